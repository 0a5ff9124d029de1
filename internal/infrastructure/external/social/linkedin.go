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

const linkedinAPIBase = "https://api.linkedin.com/v2"

// LinkedInClient shares post text on LinkedIn via the UGC posts API
type LinkedInClient struct {
	baseURL string
	client  *http.Client
}

// NewLinkedInClient builds a client authenticated with a stored member
// access token
func NewLinkedInClient(accessToken string) *LinkedInClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(context.Background(), ts)
	client.Timeout = 30 * time.Second

	return &LinkedInClient{
		baseURL: linkedinAPIBase,
		client:  client,
	}
}

type linkedinProfile struct {
	ID string `json:"id"`
}

// SharePost publishes a public text share on the authenticated member's
// feed and returns the created share id
func (c *LinkedInClient) SharePost(ctx context.Context, content string) (string, error) {
	// The author URN comes from the member profile
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/people/~", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("linkedin profile lookup returned status %d", resp.StatusCode)
	}

	var profile linkedinProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"author":         fmt.Sprintf("urn:li:person:%s", profile.ID),
		"lifecycleState": "PUBLISHED",
		"specificContent": map[string]interface{}{
			"com.linkedin.ugc.ShareContent": map[string]interface{}{
				"shareCommentary":    map[string]string{"text": content},
				"shareMediaCategory": "NONE",
			},
		},
		"visibility": map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	postReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	postReq.Header.Set("Content-Type", "application/json")
	postReq.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	postResp, err := c.client.Do(postReq)
	if err != nil {
		return "", err
	}
	defer postResp.Body.Close()

	if postResp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(postResp.Body, 2048))
		return "", fmt.Errorf("linkedin share returned status %d: %s", postResp.StatusCode, string(detail))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(postResp.Body).Decode(&created); err != nil {
		return "", err
	}

	return created.ID, nil
}
