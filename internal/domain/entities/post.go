package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PostStatus is the WordPress lifecycle status requested for a post
type PostStatus string

const (
	PostStatusDraft   PostStatus = "draft"
	PostStatusPublish PostStatus = "publish"
	PostStatusFuture  PostStatus = "future"
)

// IsValid reports whether the status is one WordPress accepts from us
func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublish, PostStatusFuture:
		return true
	}
	return false
}

// Post is the final publishable artifact: a title line plus a body.
// Constructed only at the publish boundary, never persisted as-is.
type Post struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostFromBlogText splits generated blog text into a Post. The first line is
// the title; the body starts after the blank separator line.
func PostFromBlogText(blogText string) Post {
	lines := strings.Split(blogText, "\n")
	if len(lines) == 0 {
		return Post{}
	}

	title := strings.TrimSpace(lines[0])
	content := ""
	if len(lines) > 2 {
		content = strings.TrimSpace(strings.Join(lines[2:], "\n"))
	} else if len(lines) == 2 {
		content = strings.TrimSpace(lines[1])
	}

	return Post{Title: title, Content: content}
}

// PublishedPost records a post accepted by WordPress
type PublishedPost struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RunID       *uuid.UUID `json:"run_id,omitempty" gorm:"type:uuid;index"`
	WordPressID int        `json:"wordpress_id" gorm:"index"`
	Title       string     `json:"title" gorm:"type:varchar(500);not null"`
	Status      PostStatus `json:"status" gorm:"type:varchar(20);not null"`
	Link        string     `json:"link,omitempty" gorm:"type:text"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for PublishedPost
func (PublishedPost) TableName() string {
	return "published_posts"
}

// NewPublishedPost creates a new PublishedPost entity
func NewPublishedPost(title string, status PostStatus) *PublishedPost {
	return &PublishedPost{
		ID:     uuid.New(),
		Title:  title,
		Status: status,
	}
}
