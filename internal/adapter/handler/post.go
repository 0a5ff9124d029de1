package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	postdto "github.com/winniio/meetingpress/internal/adapter/dto/post"
	"github.com/winniio/meetingpress/internal/domain/entities"
	"github.com/winniio/meetingpress/internal/usecase/publish"
)

// Post handles publishing HTTP requests
type Post struct {
	publishService *publish.Service
	logger         *zap.Logger
}

// NewPost creates a new post handler
func NewPost(publishService *publish.Service, logger *zap.Logger) *Post {
	return &Post{
		publishService: publishService,
		logger:         logger,
	}
}

// Publish sends generated blog text to WordPress
// @Summary Publish a blog post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body post.PublishRequest true "Publish request"
// @Success 200 {object} post.PublishResponse
// @Failure 400 {object} object
// @Failure 502 {object} object
// @Security BearerAuth
// @Router /v1/posts [post]
func (h *Post) Publish(c echo.Context) error {
	ctx := c.Request().Context()

	var req postdto.PublishRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	var runID *uuid.UUID
	if req.RunID != "" {
		if id, err := uuid.Parse(req.RunID); err == nil {
			runID = &id
		}
	}

	result, err := h.publishService.PublishBlogText(ctx, req.BlogText, entities.PostStatus(req.Status), req.ScheduledTime, runID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, postdto.PublishResponse{
		WordPressID: result.WordPressID,
		Link:        result.Link,
		Status:      string(result.Status),
		Title:       result.Title,
	})
}

// ShareSocial shares post text on the configured social networks
// @Summary Share a post on social networks
// @Tags posts
// @Accept json
// @Produce json
// @Param request body post.SocialShareRequest true "Share request"
// @Success 200 {object} post.SocialShareResponse
// @Failure 502 {object} object
// @Security BearerAuth
// @Router /v1/posts/social [post]
func (h *Post) ShareSocial(c echo.Context) error {
	ctx := c.Request().Context()

	var req postdto.SocialShareRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.publishService.ShareToSocial(ctx, req.Title, req.Link)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, postdto.SocialShareResponse{
		LinkedInShareID: result.LinkedInShareID,
		TweetID:         result.TweetID,
	})
}

// ListPublished returns recently published posts
// @Summary List published posts
// @Tags posts
// @Produce json
// @Success 200 {object} post.ListResponse
// @Security BearerAuth
// @Router /v1/posts [get]
func (h *Post) ListPublished(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.publishService.ListPublished(ctx, 100)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items := make([]postdto.PublishedItem, 0, len(posts))
	for _, p := range posts {
		items = append(items, postdto.PublishedItem{
			ID:          p.ID.String(),
			WordPressID: p.WordPressID,
			Title:       p.Title,
			Status:      string(p.Status),
			Link:        p.Link,
			CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		})
	}

	return HandleSuccess(h.logger, c, postdto.ListResponse{
		Posts: items,
		Count: len(items),
	})
}
