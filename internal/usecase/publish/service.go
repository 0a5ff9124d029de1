package publish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/internal/domain/entities"
	domainrepo "github.com/winniio/meetingpress/internal/domain/repositories"
	"github.com/winniio/meetingpress/internal/infrastructure/external/wordpress"
)

// BlogPublisher is the WordPress surface the publisher depends on
type BlogPublisher interface {
	CreatePost(ctx context.Context, title, content string, status entities.PostStatus, scheduledTime string) (*wordpress.PostResponse, int, error)
}

// LinkedInSharer shares post text on LinkedIn
type LinkedInSharer interface {
	SharePost(ctx context.Context, content string) (string, error)
}

// TweetPoster posts short text on X
type TweetPoster interface {
	PostTweet(ctx context.Context, text string) (string, error)
}

// maxTweetLength bounds the teaser text posted to X
const maxTweetLength = 280

// Service turns pipeline output into published posts. Social clients are
// optional; a nil client skips that network.
type Service struct {
	blog     BlogPublisher
	linkedin LinkedInSharer
	twitter  TweetPoster
	runRepo  domainrepo.RunRepository
	logger   *zap.Logger
}

// NewService constructs the publishing service. runRepo, linkedin and
// twitter may each be nil.
func NewService(blog BlogPublisher, linkedin LinkedInSharer, twitter TweetPoster, runRepo domainrepo.RunRepository, logger *zap.Logger) *Service {
	return &Service{
		blog:     blog,
		linkedin: linkedin,
		twitter:  twitter,
		runRepo:  runRepo,
		logger:   logger,
	}
}

// PublishResult reports the outcome of one WordPress publish
type PublishResult struct {
	WordPressID int                 `json:"wordpress_id"`
	Link        string              `json:"link"`
	Status      entities.PostStatus `json:"status"`
	Title       string              `json:"title"`
}

// PublishBlogText splits generated blog text into title and body and
// submits it to WordPress. runID, when non-nil, links the published post
// back to the pipeline run it came from.
func (s *Service) PublishBlogText(ctx context.Context, blogText string, status entities.PostStatus, scheduledTime string, runID *uuid.UUID) (*PublishResult, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrPublishInvalidStatus(string(status))
	}

	post := entities.PostFromBlogText(blogText)
	if post.Title == "" || post.Content == "" {
		return nil, apperrors.ErrPublishMissingContent()
	}

	resp, statusCode, err := s.blog.CreatePost(ctx, post.Title, post.Content, status, scheduledTime)
	if err != nil {
		s.logger.Error("publish.wordpress.failed",
			zap.Int("status_code", statusCode),
			zap.String("title", post.Title),
			zap.Error(err),
		)
		return nil, apperrors.ErrPublishFailed(statusCode, err.Error())
	}

	s.logger.Info("publish.wordpress.created",
		zap.Int("wordpress_id", resp.ID),
		zap.String("status", string(status)),
		zap.String("link", resp.Link),
	)

	s.recordPublishedPost(ctx, post.Title, status, scheduledTime, resp, runID)

	return &PublishResult{
		WordPressID: resp.ID,
		Link:        resp.Link,
		Status:      status,
		Title:       post.Title,
	}, nil
}

// recordPublishedPost archives the accepted post. Best-effort: WordPress
// already has the post, so a bookkeeping failure is only logged.
func (s *Service) recordPublishedPost(ctx context.Context, title string, status entities.PostStatus, scheduledTime string, resp *wordpress.PostResponse, runID *uuid.UUID) {
	if s.runRepo == nil {
		return
	}

	record := entities.NewPublishedPost(title, status)
	record.RunID = runID
	record.WordPressID = resp.ID
	record.Link = resp.Link
	if scheduledTime != "" {
		if at, err := time.Parse(time.RFC3339, scheduledTime); err == nil {
			record.ScheduledAt = &at
		}
	}

	if err := s.runRepo.CreatePublishedPost(ctx, record); err != nil {
		s.logger.Error("publish.record.failed", zap.Int("wordpress_id", resp.ID), zap.Error(err))
	}
}

// SocialShareResult reports per-network share outcomes
type SocialShareResult struct {
	LinkedInShareID string `json:"linkedin_share_id,omitempty"`
	TweetID         string `json:"tweet_id,omitempty"`
}

// ShareToSocial posts a teaser for the published post to the configured
// networks. Each network is attempted independently; the first hard
// failure is returned after the remaining networks were tried.
func (s *Service) ShareToSocial(ctx context.Context, title, link string) (*SocialShareResult, error) {
	teaser := title
	if link != "" {
		teaser = title + "\n\n" + link
	}

	result := &SocialShareResult{}
	var firstErr error

	if s.linkedin != nil {
		shareID, err := s.linkedin.SharePost(ctx, teaser)
		if err != nil {
			s.logger.Error("publish.social.linkedin_failed", zap.Error(err))
			firstErr = apperrors.ErrSocialPublishFailed("LinkedIn", err)
		} else {
			result.LinkedInShareID = shareID
		}
	}

	if s.twitter != nil {
		text := teaser
		if len(text) > maxTweetLength {
			text = text[:maxTweetLength]
		}
		tweetID, err := s.twitter.PostTweet(ctx, text)
		if err != nil {
			s.logger.Error("publish.social.twitter_failed", zap.Error(err))
			if firstErr == nil {
				firstErr = apperrors.ErrSocialPublishFailed("X", err)
			}
		} else {
			result.TweetID = tweetID
		}
	}

	return result, firstErr
}

// ListPublished returns recently recorded posts, newest first
func (s *Service) ListPublished(ctx context.Context, limit int) ([]entities.PublishedPost, error) {
	if s.runRepo == nil {
		return []entities.PublishedPost{}, nil
	}

	posts, err := s.runRepo.ListPublishedPosts(ctx, limit)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return posts, nil
}
