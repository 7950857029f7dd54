package announcement

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ClassBoard/internal/teacher"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// APIError is a client-visible failure carrying the HTTP status it maps to.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string { return e.Message }

func badRequest(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: message}
}

// Store is the announcement persistence surface, implemented by
// AnnouncementRepository and by in-memory fakes in tests.
type Store interface {
	Insert(ctx context.Context, a *Announcement) (primitive.ObjectID, error)
	FindActive(ctx context.Context, now time.Time) ([]Announcement, error)
	FindAll(ctx context.Context) ([]Announcement, error)
	Update(ctx context.Context, id primitive.ObjectID, fields FieldUpdate) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// Authorizer gates privileged operations on teacher existence.
type Authorizer interface {
	Authorize(ctx context.Context, username string) (*teacher.Teacher, error)
}

// AnnouncementService implements the announcement operations: authorize,
// validate, apply to the store, and hand back the result.
type AnnouncementService struct {
	store    Store
	auth     Authorizer
	notifier *Notifier
}

// NewAnnouncementService creates a new AnnouncementService. notifier may be nil.
func NewAnnouncementService(store Store, auth Authorizer, notifier *Notifier) *AnnouncementService {
	return &AnnouncementService{store: store, auth: auth, notifier: notifier}
}

// CreateRequest represents the request to create an announcement.
type CreateRequest struct {
	Message         string `json:"message"`          // Announcement text, required
	ExpiresAt       string `json:"expires_at"`       // ISO datetime, required
	StartsAt        string `json:"starts_at"`        // ISO datetime, optional
	TeacherUsername string `json:"teacher_username"` // Caller identity, may arrive as a query parameter instead
}

// UpdateRequest represents a partial update. Pointers distinguish a field
// that was omitted from one supplied as empty.
type UpdateRequest struct {
	Message         *string `json:"message"`
	ExpiresAt       *string `json:"expires_at"`
	StartsAt        *string `json:"starts_at"` // empty string clears the stored value
	TeacherUsername string  `json:"teacher_username"`
}

func (s *AnnouncementService) authorize(ctx context.Context, username string) (*teacher.Teacher, error) {
	t, err := s.auth.Authorize(ctx, username)
	if err != nil {
		if errors.Is(err, teacher.ErrAuthRequired) || errors.Is(err, teacher.ErrInvalidCredentials) {
			return nil, &APIError{Code: http.StatusUnauthorized, Message: err.Error()}
		}
		return nil, err
	}
	return t, nil
}

// ListActive returns the announcements visible right now, soonest to expire
// first. Public: no authorization.
func (s *AnnouncementService) ListActive(ctx context.Context) ([]Announcement, error) {
	return s.store.FindActive(ctx, time.Now().UTC())
}

// ListAll returns every stored announcement in the same order. Teachers only.
func (s *AnnouncementService) ListAll(ctx context.Context, username string) ([]Announcement, error) {
	if _, err := s.authorize(ctx, username); err != nil {
		return nil, err
	}
	return s.store.FindAll(ctx)
}

// Create validates and stores a new announcement, stamping it with the
// authorizing teacher's name and the current server time.
func (s *AnnouncementService) Create(ctx context.Context, username string, req CreateRequest) (*Announcement, error) {
	t, err := s.authorize(ctx, username)
	if err != nil {
		return nil, err
	}
	if req.Message == "" || req.ExpiresAt == "" {
		return nil, badRequest("Message and expires_at are required")
	}
	expiresAt, err := ParseTimestamp(req.ExpiresAt)
	if err != nil {
		return nil, badRequest("Invalid expires_at format. Use ISO datetime format (e.g. YYYY-MM-DDTHH:MM)")
	}
	var startsAt *time.Time
	if req.StartsAt != "" {
		parsed, err := ParseTimestamp(req.StartsAt)
		if err != nil {
			return nil, badRequest("Invalid starts_at format. Use ISO datetime format (e.g. YYYY-MM-DDTHH:MM)")
		}
		startsAt = &parsed
	}

	a := &Announcement{
		Message:   req.Message,
		StartsAt:  startsAt,
		ExpiresAt: expiresAt,
		CreatedBy: t.DisplayName(),
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.store.Insert(ctx, a)
	if err != nil {
		return nil, err
	}
	a.ID = id
	s.notifier.AnnouncementCreated(a)
	return a, nil
}

// Update applies only the supplied fields to one announcement. Supplying
// starts_at as an empty string clears it rather than parsing it.
func (s *AnnouncementService) Update(ctx context.Context, username, id string, req UpdateRequest) error {
	if _, err := s.authorize(ctx, username); err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return badRequest("Invalid announcement id")
	}

	fields := FieldUpdate{Message: req.Message}
	if req.ExpiresAt != nil {
		expiresAt, err := ParseTimestamp(*req.ExpiresAt)
		if err != nil {
			return badRequest("Invalid expires_at format")
		}
		fields.ExpiresAt = &expiresAt
	}
	if req.StartsAt != nil {
		if *req.StartsAt == "" {
			fields.ClearStartsAt = true
		} else {
			startsAt, err := ParseTimestamp(*req.StartsAt)
			if err != nil {
				return badRequest("Invalid starts_at format")
			}
			fields.StartsAt = &startsAt
		}
	}
	if fields.Empty() {
		return badRequest("No fields to update")
	}

	matched, err := s.store.Update(ctx, oid, fields)
	if err != nil {
		return err
	}
	if !matched {
		return &APIError{Code: http.StatusNotFound, Message: "Announcement not found"}
	}
	return nil
}

// Delete removes one announcement permanently.
func (s *AnnouncementService) Delete(ctx context.Context, username, id string) error {
	if _, err := s.authorize(ctx, username); err != nil {
		return err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return badRequest("Invalid announcement id")
	}
	deleted, err := s.store.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return &APIError{Code: http.StatusNotFound, Message: "Announcement not found"}
	}
	return nil
}
