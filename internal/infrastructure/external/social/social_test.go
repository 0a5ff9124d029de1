package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLinkedInSharePost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer li-token" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}

		switch r.URL.Path {
		case "/people/~":
			json.NewEncoder(w).Encode(map[string]string{"id": "abc123"})
		case "/ugcPosts":
			var payload map[string]interface{}
			json.NewDecoder(r.Body).Decode(&payload)
			if payload["author"] != "urn:li:person:abc123" {
				t.Fatalf("unexpected author %v", payload["author"])
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{"id": "urn:li:share:999"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := NewLinkedInClient("li-token")
	client.baseURL = ts.URL

	id, err := client.SharePost(context.Background(), "A new post is live.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "urn:li:share:999" {
		t.Fatalf("unexpected share id %q", id)
	}
}

func TestLinkedInSharePost_InvalidToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	client := NewLinkedInClient("bad-token")
	client.baseURL = ts.URL

	if _, err := client.SharePost(context.Background(), "text"); err == nil {
		t.Fatal("expected error for unauthorized token")
	}
}

func TestTwitterPostTweet(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tweets" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tw-token" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}

		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["text"] == "" {
			t.Fatal("expected tweet text")
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]string{"id": "17290"},
		})
	}))
	defer ts.Close()

	client := NewTwitterClient("tw-token")
	client.baseURL = ts.URL

	id, err := client.PostTweet(context.Background(), "A new post is live.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "17290" {
		t.Fatalf("unexpected tweet id %q", id)
	}
}
