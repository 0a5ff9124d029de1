package meeting

// ListRequest selects meetings inside a date window. Dates use the
// DD-MM-YYYY HH:MM format.
type ListRequest struct {
	FromDate string `json:"from_date" validate:"required"`
	ToDate   string `json:"to_date" validate:"required"`
}

// ProcessRequest runs the content pipeline for one meeting inside the
// given window
type ProcessRequest struct {
	FromDate          string `json:"from_date" validate:"required"`
	ToDate            string `json:"to_date" validate:"required"`
	IncludeTranscript bool   `json:"include_transcript"`
}
