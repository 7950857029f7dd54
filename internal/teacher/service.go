package teacher

import (
	"context"
	"errors"
)

// A missing credential and an unknown credential are the same failure kind;
// only the message differs.
var (
	ErrAuthRequired       = errors.New("Authentication required for this action")
	ErrInvalidCredentials = errors.New("Invalid teacher credentials")
)

// Store is the lookup surface the service needs from the teachers collection.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*Teacher, error)
}

type TeacherService struct {
	store Store
}

func NewTeacherService(store Store) *TeacherService {
	return &TeacherService{store: store}
}

// Authorize confirms a teacher record exists for the supplied identifier and
// returns it. Identity is asserted by value and checked only for existence;
// no password or token is verified.
func (s *TeacherService) Authorize(ctx context.Context, username string) (*Teacher, error) {
	if username == "" {
		return nil, ErrAuthRequired
	}
	t, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrInvalidCredentials
	}
	return t, nil
}
