package post

// PublishRequest submits generated blog text to WordPress. BlogText must
// hold a title line, a blank line, then the body. ScheduledTime is only
// honored with status "future" and uses the WordPress local-time format
// (2006-01-02T15:04:05).
type PublishRequest struct {
	BlogText      string `json:"blog_text" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=draft publish future"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	RunID         string `json:"run_id,omitempty" validate:"omitempty,uuid"`
}

// SocialShareRequest shares a published post on the configured networks
type SocialShareRequest struct {
	Title string `json:"title" validate:"required"`
	Link  string `json:"link,omitempty" validate:"omitempty,url"`
}
