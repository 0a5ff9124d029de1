package meeting

// Item is one meeting in a list response
type Item struct {
	Number        int    `json:"number"`
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	SentenceCount int    `json:"sentence_count"`
}

// ListResponse returns the meetings found in the requested window
type ListResponse struct {
	Meetings []Item `json:"meetings"`
	Count    int    `json:"count"`
}

// ProcessResponse returns the reconciled pipeline output for one meeting
type ProcessResponse struct {
	Message    string `json:"message"`
	RunID      string `json:"run_id"`
	MeetingID  string `json:"meeting_id"`
	Summary    string `json:"summary"`
	Anonymized string `json:"anonymized"`
	BlogPost   string `json:"blog_post"`
}
