package announcement_test

import (
	"testing"
	"time"

	"ClassBoard/internal/announcement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2099-01-01T00:00", time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15T09:30:45", time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)},
		{"2024-03-15T09:30:45Z", time.Date(2024, 3, 15, 9, 30, 45, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := announcement.ParseTimestamp(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v, want %v", got, tc.want)
		})
	}

	for _, in := range []string{"not-a-date", "", "tomorrow", "01/02/2024"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := announcement.ParseTimestamp(in)
			assert.Error(t, err)
		})
	}
}

func TestActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	hour := time.Hour

	start := now.Add(-hour)
	future := now.Add(hour)

	cases := []struct {
		name string
		a    announcement.Announcement
		want bool
	}{
		{"no start, not expired", announcement.Announcement{ExpiresAt: future}, true},
		{"started, not expired", announcement.Announcement{StartsAt: &start, ExpiresAt: future}, true},
		{"starts exactly now", announcement.Announcement{StartsAt: &now, ExpiresAt: future}, true},
		{"not started yet", announcement.Announcement{StartsAt: &future, ExpiresAt: future.Add(hour)}, false},
		{"expired", announcement.Announcement{ExpiresAt: now.Add(-hour)}, false},
		{"expires exactly now", announcement.Announcement{ExpiresAt: now}, false},
		{"start after expiry", announcement.Announcement{StartsAt: &future, ExpiresAt: now.Add(-hour)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.ActiveAt(now))
		})
	}
}
