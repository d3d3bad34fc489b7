package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
)

// ErrStoreUnavailable is returned when no reflection store is configured.
var ErrStoreUnavailable = errors.New("reflection store is not configured")

// defaultHistoryLimit is how many prior reflections personalize a chat when
// the client does not send its own context.
const defaultHistoryLimit = 3

// ReflectionService owns reflection records: saving completed forms and
// serving the recent history that personalizes chat prompts.
type ReflectionService struct {
	repo   repositories.ReflectionRepository
	logger *zap.Logger
}

// NewReflectionService creates a new reflection service. The repository may be
// nil when persistence is disabled.
func NewReflectionService(repo repositories.ReflectionRepository, logger *zap.Logger) *ReflectionService {
	return &ReflectionService{repo: repo, logger: logger}
}

// Save validates and stores a reflection, assigning its id and timestamp.
func (s *ReflectionService) Save(ctx context.Context, reflection *entities.Reflection) error {
	if s.repo == nil {
		return ErrStoreUnavailable
	}
	if err := reflection.Validate(); err != nil {
		return err
	}
	reflection.ID = uuid.NewString()
	reflection.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, reflection)
}

// Recent returns the user's reflections, most recent first.
func (s *ReflectionService) Recent(ctx context.Context, userID string, limit int) ([]*entities.Reflection, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.GetRecentByUserID(ctx, userID, limit)
}

// HistoryFor fetches prompt history for a user, best-effort: any store problem
// degrades to an empty history rather than failing the chat request.
func (s *ReflectionService) HistoryFor(ctx context.Context, userID string) []entities.ReflectionSummary {
	if s.repo == nil || userID == "" {
		return nil
	}

	reflections, err := s.repo.GetRecentByUserID(ctx, userID, defaultHistoryLimit)
	if err != nil {
		s.logger.Warn("Failed to load reflection history, continuing without it",
			zap.String("user_id", userID),
			zap.Error(err))
		return nil
	}

	summaries := make([]entities.ReflectionSummary, 0, len(reflections))
	for _, reflection := range reflections {
		summaries = append(summaries, reflection.Summary())
	}
	return summaries
}
