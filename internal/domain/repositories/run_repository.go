package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/winniio/meetingpress/internal/domain/entities"
)

// RunRepository persists pipeline runs and the posts published from them
type RunRepository interface {
	CreateRun(ctx context.Context, run *entities.PipelineRun) error
	GetRunByID(ctx context.Context, id uuid.UUID) (*entities.PipelineRun, error)
	GetLatestRunByMeetingID(ctx context.Context, meetingID string) (*entities.PipelineRun, error)
	ListRunsByMeetingID(ctx context.Context, meetingID string) ([]entities.PipelineRun, error)

	CreatePublishedPost(ctx context.Context, post *entities.PublishedPost) error
	ListPublishedPosts(ctx context.Context, limit int) ([]entities.PublishedPost, error)
}
