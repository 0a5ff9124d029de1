package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/internal/domain/entities"
	"github.com/winniio/meetingpress/internal/infrastructure/external/wordpress"
)

type fakeBlog struct {
	title         string
	content       string
	status        entities.PostStatus
	scheduledTime string
	calls         int

	resp       *wordpress.PostResponse
	statusCode int
	err        error
}

func (f *fakeBlog) CreatePost(_ context.Context, title, content string, status entities.PostStatus, scheduledTime string) (*wordpress.PostResponse, int, error) {
	f.calls++
	f.title = title
	f.content = content
	f.status = status
	f.scheduledTime = scheduledTime
	return f.resp, f.statusCode, f.err
}

type fakeLinkedIn struct {
	content string
	shareID string
	err     error
}

func (f *fakeLinkedIn) SharePost(_ context.Context, content string) (string, error) {
	f.content = content
	return f.shareID, f.err
}

type fakeTwitter struct {
	text    string
	tweetID string
	err     error
}

func (f *fakeTwitter) PostTweet(_ context.Context, text string) (string, error) {
	f.text = text
	return f.tweetID, f.err
}

const blogText = "Lessons From a Planning Sprint\n\nThe team gathered to align on priorities.\nEveryone left with clear next steps."

func TestPublishBlogText(t *testing.T) {
	blog := &fakeBlog{resp: &wordpress.PostResponse{ID: 42, Link: "https://winniio.io/?p=42", Status: "draft"}, statusCode: 201}
	svc := NewService(blog, nil, nil, nil, zap.NewNop())

	result, err := svc.PublishBlogText(context.Background(), blogText, entities.PostStatusDraft, "", nil)
	require.NoError(t, err)
	require.Equal(t, 42, result.WordPressID)
	require.Equal(t, "https://winniio.io/?p=42", result.Link)
	require.Equal(t, "Lessons From a Planning Sprint", result.Title)

	require.Equal(t, "Lessons From a Planning Sprint", blog.title)
	require.Equal(t, "The team gathered to align on priorities.\nEveryone left with clear next steps.", blog.content)
	require.Equal(t, entities.PostStatusDraft, blog.status)
	require.Empty(t, blog.scheduledTime)
}

func TestPublishBlogText_InvalidStatus(t *testing.T) {
	blog := &fakeBlog{}
	svc := NewService(blog, nil, nil, nil, zap.NewNop())

	_, err := svc.PublishBlogText(context.Background(), blogText, entities.PostStatus("pending"), "", nil)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.ErrorCode_PUBLISH_INVALID_STATUS, appErr.Code)
	require.Zero(t, blog.calls, "invalid status must be rejected before any request")
}

func TestPublishBlogText_MissingContent(t *testing.T) {
	blog := &fakeBlog{}
	svc := NewService(blog, nil, nil, nil, zap.NewNop())

	for _, text := range []string{"", "Title only"} {
		_, err := svc.PublishBlogText(context.Background(), text, entities.PostStatusDraft, "", nil)
		require.Error(t, err, "text %q", text)

		var appErr apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		require.Equal(t, apperrors.ErrorCode_PUBLISH_MISSING_CONTENT, appErr.Code)
	}
	require.Zero(t, blog.calls)
}

func TestPublishBlogText_WordPressRejection(t *testing.T) {
	blog := &fakeBlog{statusCode: 403, err: errors.New("wordpress returned status 403: forbidden")}
	svc := NewService(blog, nil, nil, nil, zap.NewNop())

	_, err := svc.PublishBlogText(context.Background(), blogText, entities.PostStatusPublish, "", nil)
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.ErrorCode_PUBLISH_FAILED, appErr.Code)
}

func TestPublishBlogText_FutureForwardsSchedule(t *testing.T) {
	blog := &fakeBlog{resp: &wordpress.PostResponse{ID: 7, Status: "future"}, statusCode: 201}
	svc := NewService(blog, nil, nil, nil, zap.NewNop())

	_, err := svc.PublishBlogText(context.Background(), blogText, entities.PostStatusFuture, "2026-09-01T09:00:00", nil)
	require.NoError(t, err)
	require.Equal(t, "2026-09-01T09:00:00", blog.scheduledTime)
}

func TestShareToSocial(t *testing.T) {
	li := &fakeLinkedIn{shareID: "urn:li:share:1"}
	tw := &fakeTwitter{tweetID: "123"}
	svc := NewService(&fakeBlog{}, li, tw, nil, zap.NewNop())

	result, err := svc.ShareToSocial(context.Background(), "A Title", "https://winniio.io/?p=42")
	require.NoError(t, err)
	require.Equal(t, "urn:li:share:1", result.LinkedInShareID)
	require.Equal(t, "123", result.TweetID)
	require.Contains(t, li.content, "A Title")
	require.Contains(t, li.content, "https://winniio.io/?p=42")
}

func TestShareToSocial_TruncatesTweet(t *testing.T) {
	tw := &fakeTwitter{tweetID: "123"}
	svc := NewService(&fakeBlog{}, nil, tw, nil, zap.NewNop())

	long := make([]byte, 400)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.ShareToSocial(context.Background(), string(long), "")
	require.NoError(t, err)
	require.Len(t, tw.text, maxTweetLength)
}

func TestShareToSocial_LinkedInFailureStillTriesTwitter(t *testing.T) {
	li := &fakeLinkedIn{err: errors.New("expired token")}
	tw := &fakeTwitter{tweetID: "123"}
	svc := NewService(&fakeBlog{}, li, tw, nil, zap.NewNop())

	result, err := svc.ShareToSocial(context.Background(), "A Title", "")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.ErrorCode_SOCIAL_PUBLISH_FAILED, appErr.Code)

	require.Equal(t, "123", result.TweetID, "twitter share must still run")
	require.Empty(t, result.LinkedInShareID)
}

func TestShareToSocial_NoClientsConfigured(t *testing.T) {
	svc := NewService(&fakeBlog{}, nil, nil, nil, zap.NewNop())

	result, err := svc.ShareToSocial(context.Background(), "A Title", "")
	require.NoError(t, err)
	require.Empty(t, result.LinkedInShareID)
	require.Empty(t, result.TweetID)
}
