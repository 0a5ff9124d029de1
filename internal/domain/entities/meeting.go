package entities

// Sentence is one speaker turn inside a Fireflies transcript. Order is
// significant: consecutive sentences reconstruct the conversation.
type Sentence struct {
	RawText     string `json:"raw_text"`
	SpeakerName string `json:"speaker_name"`
	SpeakerID   string `json:"speaker_id"`
}

// Meeting is one transcribed conversation as returned by the Fireflies
// Transcripts query. Provider-owned and read-only to this service.
type Meeting struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TranscriptURL string     `json:"transcript_url"`
	DateString    string     `json:"dateString"`
	AudioURL      string     `json:"audio_url"`
	VideoURL      string     `json:"video_url"`
	Sentences     []Sentence `json:"sentences"`
}

// MeetingSummary holds the fixed AI summary fields Fireflies attaches to a
// transcript. Passed through unmodified into the pipeline's first stage.
type MeetingSummary struct {
	Keywords       []string `json:"keywords,omitempty"`
	ActionItems    string   `json:"action_items,omitempty"`
	Outline        string   `json:"outline,omitempty"`
	ShorthandBullet string  `json:"shorthand_bullet,omitempty"`
	Overview       string   `json:"overview,omitempty"`
	BulletGist     string   `json:"bullet_gist,omitempty"`
	Gist           string   `json:"gist,omitempty"`
	ShortSummary   string   `json:"short_summary,omitempty"`
}

// IsEmpty reports whether the summary carries no provider data, which is
// what the fail-soft fetch contract returns on error.
func (s MeetingSummary) IsEmpty() bool {
	return len(s.Keywords) == 0 &&
		s.ActionItems == "" &&
		s.Outline == "" &&
		s.ShorthandBullet == "" &&
		s.Overview == "" &&
		s.BulletGist == "" &&
		s.Gist == "" &&
		s.ShortSummary == ""
}

// MeetingData is the combined extraction record fed into the pipeline:
// one selected meeting plus its formatted transcript and summary.
type MeetingData struct {
	MeetingTitle string         `json:"meeting_title"`
	MeetingTime  string         `json:"meeting_time"`
	MeetingID    string         `json:"meeting_id"`
	Transcript   string         `json:"transcript"`
	Summary      MeetingSummary `json:"summary"`
}
