package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/creziapro/site/internal/domain"
	"github.com/creziapro/site/internal/logger"
)

// adminSessionTTL is how long a back-office login stays valid.
const adminSessionTTL = 24 * 60 * 60 * 1000 // 24h in millis

// CreateAdminSession mints an opaque session token for userID, valid
// for 24 hours, and returns the token.
func (s *Store) CreateAdminSession(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return "", err
	}

	token := uuid.NewString()
	session := domain.AdminSession{
		UserID:  userID,
		Expires: s.now() + adminSessionTTL,
	}

	if err := s.put(ctx, adminSessionKey(token), session); err != nil {
		return "", err
	}
	s.adminSessions[token] = session
	return token, nil
}

// VerifyAdminSession returns the session behind token if it is still
// valid, or nil. An expired record is deleted as a side effect of the
// failed verification (lazy expiry); there is no background sweep.
func (s *Store) VerifyAdminSession(ctx context.Context, token string) (*domain.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	session, ok := s.adminSessions[token]
	if !ok {
		return nil, nil
	}
	if !session.Expired(s.now()) {
		return &session, nil
	}

	s.log.Debug("removing expired admin session", logger.String("user", session.UserID))
	if err := s.kv.Delete(ctx, adminSessionKey(token)); err != nil {
		return nil, err
	}
	delete(s.adminSessions, token)
	return nil, nil
}

// DeleteAdminSession removes the session unconditionally (logout).
func (s *Store) DeleteAdminSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	if err := s.kv.Delete(ctx, adminSessionKey(token)); err != nil {
		return err
	}
	delete(s.adminSessions, token)
	return nil
}
