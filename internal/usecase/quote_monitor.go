package usecase

import (
	"context"

	"mecanica_xpto_quotes/internal/domain/quoting"
)

// IQuoteMonitor keeps a live projection per watched session.
type IQuoteMonitor interface {
	// Watch returns the current projection of a session and keeps polling it
	// until it settles.
	Watch(ctx context.Context, sessionID string) (quoting.Projection, error)
	// Refresh forces one fetch, even for a settled session.
	Refresh(ctx context.Context, sessionID string) (quoting.Projection, error)
	Forget(sessionID string)
}
