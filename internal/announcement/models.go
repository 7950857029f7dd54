package announcement

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Announcement is the document stored in MongoDB for a single announcement.
type Announcement struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"` // Unique identifier assigned by the store
	Message   string             `bson:"message"`       // Text shown to users
	StartsAt  *time.Time         `bson:"starts_at"`     // Start of the visibility window; nil means active from the beginning of time
	ExpiresAt time.Time          `bson:"expires_at"`    // End of the visibility window
	CreatedBy string             `bson:"created_by"`    // Username of the authoring teacher
	CreatedAt time.Time          `bson:"created_at"`    // Server-assigned creation time, never returned to clients
}

// ActiveAt reports whether the announcement is visible at the given instant:
// not yet expired, and started (or with no start at all).
func (a *Announcement) ActiveAt(now time.Time) bool {
	if !a.ExpiresAt.After(now) {
		return false
	}
	return a.StartsAt == nil || !a.StartsAt.After(now)
}

// FieldUpdate carries the subset of fields a partial update touches. A nil
// pointer means the field was not supplied. ClearStartsAt nulls the stored
// starts_at instead of setting it.
type FieldUpdate struct {
	Message       *string
	ExpiresAt     *time.Time
	StartsAt      *time.Time
	ClearStartsAt bool
}

// Empty reports whether the update touches nothing.
func (u FieldUpdate) Empty() bool {
	return u.Message == nil && u.ExpiresAt == nil && u.StartsAt == nil && !u.ClearStartsAt
}

// timestampLayouts are the accepted ISO datetime forms, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO datetime string. Values without a zone are
// taken as UTC; no timezone normalization is applied.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
