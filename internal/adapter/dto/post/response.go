package post

// PublishResponse reports an accepted WordPress post
type PublishResponse struct {
	WordPressID int    `json:"wordpress_id"`
	Link        string `json:"link"`
	Status      string `json:"status"`
	Title       string `json:"title"`
}

// SocialShareResponse reports per-network share ids; a network missing
// from the response was not configured or failed
type SocialShareResponse struct {
	LinkedInShareID string `json:"linkedin_share_id,omitempty"`
	TweetID         string `json:"tweet_id,omitempty"`
}

// PublishedItem is one recorded post in a list response
type PublishedItem struct {
	ID          string `json:"id"`
	WordPressID int    `json:"wordpress_id"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	Link        string `json:"link,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ListResponse returns recently published posts
type ListResponse struct {
	Posts []PublishedItem `json:"posts"`
	Count int             `json:"count"`
}
