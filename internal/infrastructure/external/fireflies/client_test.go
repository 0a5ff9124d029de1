package fireflies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/winniio/meetingpress/pkg/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := NewClient(&config.FirefliesConfig{
		APIKey:  "test-key",
		BaseURL: ts.URL,
	}, zap.NewNop())
	return client, ts
}

func TestFetchMeetings_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}

		var req struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if !strings.Contains(req.Query, "transcripts(limit: $limit") {
			t.Fatalf("unexpected query: %s", req.Query)
		}
		if req.Variables["limit"] != float64(50) {
			t.Fatalf("expected limit 50, got %v", req.Variables["limit"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcripts": []map[string]interface{}{
					{
						"id":         "m-1",
						"title":      "Weekly sync",
						"dateString": "2025-06-20T08:00:00.000Z",
						"sentences": []map[string]interface{}{
							{"raw_text": "Hello.", "speaker_name": "Alice", "speaker_id": "1"},
						},
					},
				},
			},
		})
	})

	meetings := client.FetchMeetings(context.Background(), "2025-06-20T06:00:00Z", "2025-06-20T12:00:00Z")
	if len(meetings) != 1 {
		t.Fatalf("expected 1 meeting, got %d", len(meetings))
	}
	if meetings[0].ID != "m-1" || meetings[0].Title != "Weekly sync" {
		t.Fatalf("unexpected meeting %+v", meetings[0])
	}
	if len(meetings[0].Sentences) != 1 || meetings[0].Sentences[0].SpeakerName != "Alice" {
		t.Fatalf("unexpected sentences %+v", meetings[0].Sentences)
	}
}

func TestFetchMeetings_FailSoftOnHTTPError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	meetings := client.FetchMeetings(context.Background(), "a", "b")
	if len(meetings) != 0 {
		t.Fatalf("expected empty list on upstream failure, got %d", len(meetings))
	}
}

func TestFetchMeetings_FailSoftOnGraphQLError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{{"message": "invalid token"}},
		})
	})

	meetings := client.FetchMeetings(context.Background(), "a", "b")
	if len(meetings) != 0 {
		t.Fatalf("expected empty list on graphql error, got %d", len(meetings))
	}
}

func TestGetSummary_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]interface{} `json:"variables"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Variables["transcriptId"] != "m-1" {
			t.Fatalf("expected transcriptId m-1, got %v", req.Variables["transcriptId"])
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"transcript": map[string]interface{}{
					"summary": map[string]interface{}{
						"keywords":      []string{"roadmap", "budget"},
						"gist":          "Planning discussion",
						"short_summary": "The team planned Q3.",
					},
				},
			},
		})
	})

	summary := client.GetSummary(context.Background(), "m-1")
	if summary.Gist != "Planning discussion" {
		t.Fatalf("unexpected summary %+v", summary)
	}
	if len(summary.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %v", summary.Keywords)
	}
}

func TestGetSummary_FailSoftToEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	summary := client.GetSummary(context.Background(), "m-1")
	if !summary.IsEmpty() {
		t.Fatalf("expected empty summary, got %+v", summary)
	}
}

func TestValidateAPIKey(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer user-key" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"errors": []map[string]string{{"message": "unauthorized"}},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"transcripts": []interface{}{}},
		})
	})

	if err := client.ValidateAPIKey(context.Background(), "user-key"); err != nil {
		t.Fatalf("expected valid key, got %v", err)
	}
	if err := client.ValidateAPIKey(context.Background(), "wrong-key"); err == nil {
		t.Fatal("expected error for invalid key")
	}
}
