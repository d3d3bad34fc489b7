package repositories

import (
	"context"

	"github.com/samueldharshi/reflectra/domain/entities"
)

// ReflectionRepository defines data access methods for reflection records
type ReflectionRepository interface {
	Create(ctx context.Context, reflection *entities.Reflection) error
	// GetRecentByUserID returns the user's reflections, most recent first.
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]*entities.Reflection, error)
}
