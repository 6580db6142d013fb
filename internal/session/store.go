package session

import (
	"context"
	"errors"
	"time"

	"github.com/saim-honey388/BAKERY-CHAT/internal/conversation"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists conversation sessions between turns. Implementations
// must be safe for concurrent use.
type Store interface {
	Load(ctx context.Context, id string) (*conversation.Session, error)
	Save(ctx context.Context, sess *conversation.Session) error
	Delete(ctx context.Context, id string) error
}

// TTL of an idle session before the store drops it.
const defaultTTL = 30 * time.Minute
