package services

import (
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"

	"vehicle-checklist-service/internal/core/domain"
)

// SessionService exchanges the static access code for a session-scoped
// capability token gating the reporting and vehicle-registration views.
// This is an access gate, not a security boundary.
type SessionService struct {
	code string

	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewSessionService(code string) *SessionService {
	return &SessionService{
		code:   code,
		tokens: make(map[string]struct{}),
	}
}

// Unlock compares the supplied code by exact string equality and mints
// a token valid for the rest of the session.
func (s *SessionService) Unlock(code string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(code), []byte(s.code)) != 1 {
		return "", domain.ErrInvalidAccessCode
	}
	token := uuid.New().String()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// Valid reports whether token was minted by Unlock.
func (s *SessionService) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}
