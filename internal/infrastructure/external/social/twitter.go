package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const twitterAPIBase = "https://api.twitter.com/2"

// TwitterClient posts tweets via the X API v2
type TwitterClient struct {
	baseURL string
	client  *http.Client
}

// NewTwitterClient builds a client authenticated with a stored user access
// token
func NewTwitterClient(accessToken string) *TwitterClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(context.Background(), ts)
	client.Timeout = 30 * time.Second

	return &TwitterClient{
		baseURL: twitterAPIBase,
		client:  client,
	}
}

// PostTweet publishes a tweet and returns its id
func (c *TwitterClient) PostTweet(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/tweets", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("twitter returned status %d: %s", resp.StatusCode, string(detail))
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}

	return created.Data.ID, nil
}
