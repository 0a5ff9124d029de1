package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/winniio/meetingpress/internal/domain/entities"
)

// RunRepository handles pipeline run data operations
type RunRepository struct {
	db *gorm.DB
}

// NewRunRepository creates a new run repository
func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

// CreateRun creates a new pipeline run record
func (r *RunRepository) CreateRun(ctx context.Context, run *entities.PipelineRun) error {
	if run == nil {
		return errors.New("run cannot be nil")
	}
	return r.db.WithContext(ctx).Create(run).Error
}

// GetRunByID retrieves a pipeline run by ID
func (r *RunRepository) GetRunByID(ctx context.Context, id uuid.UUID) (*entities.PipelineRun, error) {
	var run entities.PipelineRun
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// GetLatestRunByMeetingID retrieves the most recent run for a meeting
func (r *RunRepository) GetLatestRunByMeetingID(ctx context.Context, meetingID string) (*entities.PipelineRun, error) {
	var run entities.PipelineRun
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		First(&run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// ListRunsByMeetingID retrieves all runs for a meeting
func (r *RunRepository) ListRunsByMeetingID(ctx context.Context, meetingID string) ([]entities.PipelineRun, error) {
	var runs []entities.PipelineRun
	if err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

// CreatePublishedPost records a post accepted by WordPress
func (r *RunRepository) CreatePublishedPost(ctx context.Context, post *entities.PublishedPost) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}
	return r.db.WithContext(ctx).Create(post).Error
}

// ListPublishedPosts retrieves recently published posts
func (r *RunRepository) ListPublishedPosts(ctx context.Context, limit int) ([]entities.PublishedPost, error) {
	if limit == 0 {
		limit = 100
	}
	var posts []entities.PublishedPost
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
