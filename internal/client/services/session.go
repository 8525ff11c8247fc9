package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/client/client"
)

var ErrEmptyCredentials = errors.New("username and password are required")

// SessionService gates the interactive session. Credentials are not checked
// against anything; any non-empty pair opens a session.
type SessionService interface {
	Login(ctx context.Context, username string, password []byte) error
	Ping(ctx context.Context) error
}

type sessionService struct {
	client client.Client
}

func NewSessionService(c client.Client) SessionService {
	return &sessionService{client: c}
}

func (s *sessionService) Login(_ context.Context, username string, password []byte) error {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return ErrEmptyCredentials
	}
	return nil
}

// Ping reports whether the backend answers its health check.
func (s *sessionService) Ping(ctx context.Context) error {
	if s.client == nil || !s.client.Configured() {
		return client.ErrNotConfigured
	}
	if !s.client.HealthCheck(ctx) {
		return client.ErrUnavailable
	}
	return nil
}
