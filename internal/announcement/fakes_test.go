package announcement_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"ClassBoard/internal/announcement"
	"ClassBoard/internal/teacher"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory announcement.Store for tests.
type fakeStore struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]announcement.Announcement
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[primitive.ObjectID]announcement.Announcement)}
}

func (f *fakeStore) Insert(ctx context.Context, a *announcement.Announcement) (primitive.ObjectID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := primitive.NewObjectID()
	stored := *a
	stored.ID = id
	f.docs[id] = stored
	return id, nil
}

func (f *fakeStore) FindActive(ctx context.Context, now time.Time) ([]announcement.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]announcement.Announcement, 0)
	for _, a := range f.docs {
		if a.ActiveAt(now) {
			out = append(out, a)
		}
	}
	sortByExpiry(out)
	return out, nil
}

func (f *fakeStore) FindAll(ctx context.Context) ([]announcement.Announcement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]announcement.Announcement, 0)
	for _, a := range f.docs {
		out = append(out, a)
	}
	sortByExpiry(out)
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, id primitive.ObjectID, fields announcement.FieldUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.docs[id]
	if !ok {
		return false, nil
	}
	if fields.Message != nil {
		a.Message = *fields.Message
	}
	if fields.ExpiresAt != nil {
		a.ExpiresAt = *fields.ExpiresAt
	}
	if fields.ClearStartsAt {
		a.StartsAt = nil
	} else if fields.StartsAt != nil {
		a.StartsAt = fields.StartsAt
	}
	f.docs[id] = a
	return true, nil
}

func (f *fakeStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return false, nil
	}
	delete(f.docs, id)
	return true, nil
}

// get returns the stored document directly, bypassing the service.
func (f *fakeStore) get(id primitive.ObjectID) (announcement.Announcement, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.docs[id]
	return a, ok
}

func sortByExpiry(items []announcement.Announcement) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpiresAt.Before(items[j].ExpiresAt)
	})
}

// fakeTeacherStore is an in-memory teacher.Store keyed by _id.
type fakeTeacherStore struct {
	teachers map[string]teacher.Teacher
}

func (f *fakeTeacherStore) FindByUsername(ctx context.Context, username string) (*teacher.Teacher, error) {
	t, ok := f.teachers[username]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTeacherStore) ListWithEmail(ctx context.Context) ([]teacher.Teacher, error) {
	var out []teacher.Teacher
	for _, t := range f.teachers {
		if t.Email != "" {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTestService(store announcement.Store) *announcement.AnnouncementService {
	teachers := &fakeTeacherStore{teachers: map[string]teacher.Teacher{
		"msmith":  {ID: "msmith", Username: "mr_smith", Name: "M. Smith"},
		"adavies": {ID: "adavies"}, // no username field, created_by falls back to the id
	}}
	return announcement.NewAnnouncementService(store, teacher.NewTeacherService(teachers), nil)
}
