package wordpress

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/winniio/meetingpress/internal/domain/entities"
	"github.com/winniio/meetingpress/pkg/config"
)

// Client posts content to a WordPress site over the REST API using an
// application password. Construct once per process and pass by reference;
// credentials are never read from globals.
type Client struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewClient creates a WordPress client from config
func NewClient(cfg *config.WordPressConfig) *Client {
	credentials := cfg.Username + ":" + cfg.ApplicationPassword
	token := base64.StdEncoding.EncodeToString([]byte(credentials))

	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		authToken: token,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// postPayload is the JSON body for POST /wp-json/wp/v2/posts
type postPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
	Date    string `json:"date,omitempty"`
}

// PostResponse is the subset of the WordPress create-post response we use
type PostResponse struct {
	ID     int    `json:"id"`
	Link   string `json:"link"`
	Status string `json:"status"`
}

// CreatePost submits one post. The date field is attached only when status
// is "future" AND a scheduled time was supplied; scheduling without a time
// silently degrades to an undated future post, matching WordPress behavior.
// Success is HTTP 201 or 202; anything else returns the response body as
// error detail along with the status code.
func (c *Client) CreatePost(ctx context.Context, title, content string, status entities.PostStatus, scheduledTime string) (*PostResponse, int, error) {
	payload := postPayload{
		Title:   title,
		Content: content,
		Status:  string(status),
	}
	if status == entities.PostStatusFuture && scheduledTime != "" {
		payload.Date = scheduledTime
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	endpoint := c.baseURL + "/wp-json/wp/v2/posts"
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.authToken)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, resp.StatusCode, fmt.Errorf("wordpress returned status %d: %s", resp.StatusCode, string(detail))
	}

	var pr PostResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to decode wordpress response: %w", err)
	}

	return &pr, resp.StatusCode, nil
}
