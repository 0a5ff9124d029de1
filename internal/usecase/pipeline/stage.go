package pipeline

import "fmt"

// Sentinel prefixes carried in the failure text of each stage. Kept
// verbatim from the behavior this service replaces so operators and
// downstream consumers see the same diagnostics.
const (
	summarizeFailurePrefix = "Failed to generate summary:"
	anonymizeFailurePrefix = "Failed to anonymize the summary:"
	writeFailurePrefix     = "Failed to create blog post:"
)

// User-facing placeholders substituted during reconciliation when a stage
// did not produce usable output.
const (
	overviewPlaceholder   = "No summary generated due to error."
	anonymizedPlaceholder = "No anonymized summary generated."
	blogPostPlaceholder   = "Blog post could not be generated due to prior errors."
)

// StageResult is the tagged output of one generation stage. OK
// distinguishes real output from failure text, so callers never have to
// sniff string prefixes to tell them apart.
type StageResult struct {
	OK   bool   `json:"ok"`
	Text string `json:"text"`
}

func stageOK(text string) StageResult {
	return StageResult{OK: true, Text: text}
}

func stageFailed(prefix string, err error) StageResult {
	return StageResult{OK: false, Text: fmt.Sprintf("%s %v", prefix, err)}
}
