package fireflies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/winniio/meetingpress/internal/domain/entities"
	"github.com/winniio/meetingpress/pkg/config"
)

const transcriptsQuery = `
query Transcripts($limit: Int, $skip: Int, $fromDate: DateTime, $toDate: DateTime) {
    transcripts(limit: $limit, skip: $skip, fromDate: $fromDate, toDate: $toDate) {
        id
        title
        transcript_url
        dateString
        audio_url
        video_url
        sentences {
            raw_text
            speaker_name
            speaker_id
        }
    }
}`

const summaryQuery = `
query Transcript($transcriptId: String!) {
    transcript(id: $transcriptId) {
        summary {
            keywords
            action_items
            outline
            shorthand_bullet
            overview
            bullet_gist
            gist
            short_summary
        }
    }
}`

const probeQuery = `
query {
    transcripts(limit: 1) {
        id
    }
}`

// Client talks to the Fireflies GraphQL API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewClient creates a Fireflies client from config
func NewClient(cfg *config.FirefliesConfig, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

// do executes one GraphQL request with the given bearer key and decodes the
// data payload into out
func (c *Client) do(ctx context.Context, apiKey, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("fireflies returned status %d: %s", resp.StatusCode, string(detail))
	}

	var gr graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return err
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("fireflies graphql error: %s", gr.Errors[0].Message)
	}
	if out != nil && gr.Data != nil {
		return json.Unmarshal(gr.Data, out)
	}
	return nil
}

// FetchMeetings lists meetings whose date falls inside [from, to]. The
// order is provider-defined and not re-sorted here. Fail-soft: any
// transport, HTTP or GraphQL error is logged and an empty list returned.
func (c *Client) FetchMeetings(ctx context.Context, fromTimestamp, toTimestamp string) []entities.Meeting {
	variables := map[string]interface{}{
		"limit":    50,
		"skip":     0,
		"fromDate": fromTimestamp,
		"toDate":   toTimestamp,
	}

	var data struct {
		Transcripts []entities.Meeting `json:"transcripts"`
	}
	if err := c.do(ctx, c.apiKey, transcriptsQuery, variables, &data); err != nil {
		c.logger.Error("fireflies.fetch_meetings.failed",
			zap.String("from", fromTimestamp),
			zap.String("to", toTimestamp),
			zap.Error(err),
		)
		return []entities.Meeting{}
	}

	return data.Transcripts
}

// GetSummary fetches the AI summary for one meeting. Fail-soft: errors are
// logged and an empty summary returned.
func (c *Client) GetSummary(ctx context.Context, meetingID string) entities.MeetingSummary {
	variables := map[string]interface{}{
		"transcriptId": meetingID,
	}

	var data struct {
		Transcript struct {
			Summary entities.MeetingSummary `json:"summary"`
		} `json:"transcript"`
	}
	if err := c.do(ctx, c.apiKey, summaryQuery, variables, &data); err != nil {
		c.logger.Error("fireflies.get_summary.failed",
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
		return entities.MeetingSummary{}
	}

	return data.Transcript.Summary
}

// ValidateAPIKey probes the API with a 1-transcript query to check that the
// supplied key is usable. Unlike the fetch methods this surfaces the error.
func (c *Client) ValidateAPIKey(ctx context.Context, apiKey string) error {
	return c.do(ctx, apiKey, probeQuery, nil, nil)
}
