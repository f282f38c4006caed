package repository

import (
	"context"

	"github.com/babyBee3443/biogenius-sub001/internal/domain"
	"github.com/babyBee3443/biogenius-sub001/internal/store"
)

// SessionRepository reads the session collection written by the external
// identity boundary. This service only consumes sessions.
type SessionRepository struct {
	col *collection[domain.Session]
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(kv store.KV) *SessionRepository {
	return &SessionRepository{
		col: newCollection(kv, store.KeySessions, func(s *domain.Session) string { return s.Token }),
	}
}

// GetByToken returns the session with the given token, or nil.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) *domain.Session {
	return r.col.GetByID(ctx, token)
}

// Put upserts a session record (used by tests and by operators seeding an
// identity out of band).
func (r *SessionRepository) Put(ctx context.Context, s domain.Session) error {
	existing, err := r.col.Mutate(ctx, s.Token, func(old *domain.Session) error {
		*old = s
		return nil
	})
	if err != nil {
		return err
	}
	if existing == nil {
		_, err = r.col.Insert(ctx, s)
	}
	return err
}
