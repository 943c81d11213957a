package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, func() string { return "test-token" })
	return client, server
}

func TestGetVideoSendsBearerToken(t *testing.T) {
	var gotAuth string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(model.Video{ID: "v1", YouTubeID: "yt1", Title: "First"})
	})
	defer server.Close()

	video, err := client.GetVideo(context.Background(), "v1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Expected bearer header, got '%s'", gotAuth)
	}
	if video.ID != "v1" || video.Title != "First" {
		t.Errorf("Unexpected video decoded: %+v", video)
	}
}

func TestListVideosQueryParameters(t *testing.T) {
	var gotQuery string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]*model.Video{})
	})
	defer server.Close()

	_, err := client.ListVideos(context.Background(), "music", model.SortRatingDesc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotQuery != "category=music&sort=rating_desc" {
		t.Errorf("Unexpected query string: %s", gotQuery)
	}
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.GetList(context.Background(), "missing")
	if err == nil {
		t.Fatal("Expected error for 404 response, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", apiErr.StatusCode)
	}
}

func TestCreateListPostsName(t *testing.T) {
	var gotMethod string
	var gotBody map[string]string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(model.List{ID: "l1", Name: gotBody["name"]})
	})
	defer server.Close()

	list, err := client.CreateList(context.Background(), "Watch Later")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("Expected POST, got %s", gotMethod)
	}
	if gotBody["name"] != "Watch Later" {
		t.Errorf("Expected name 'Watch Later' in body, got '%s'", gotBody["name"])
	}
	if list.Name != "Watch Later" {
		t.Errorf("Expected list name 'Watch Later', got '%s'", list.Name)
	}
}

func TestListDecodesMixedVideoRefShapes(t *testing.T) {
	// Backends denormalize inconsistently: membership entries may carry a
	// bare id or a full embedded video object.
	payload := `{
		"id": "l1",
		"name": "Favorites",
		"isDefault": false,
		"ownerId": "u1",
		"videoItems": [
			{"video": "v-bare", "addedAt": "2026-01-10T12:00:00Z"},
			{"video": {"id": "v-full", "youtubeId": "yt2", "title": "Embedded"}, "addedAt": "2026-01-11T12:00:00Z"}
		]
	}`

	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	defer server.Close()

	list, err := client.GetList(context.Background(), "l1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(list.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(list.Items))
	}

	if list.Items[0].Video.IsResolved() {
		t.Error("Bare-id reference should be unresolved")
	}
	if list.Items[0].Video.ID() != "v-bare" {
		t.Errorf("Expected id 'v-bare', got '%s'", list.Items[0].Video.ID())
	}

	if !list.Items[1].Video.IsResolved() {
		t.Error("Embedded reference should be resolved")
	}
	video, _ := list.Items[1].Video.Video()
	if video.Title != "Embedded" {
		t.Errorf("Expected title 'Embedded', got '%s'", video.Title)
	}
}

func TestDeleteListVideoPath(t *testing.T) {
	var gotPath, gotMethod string
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	if err := client.RemoveListVideo(context.Background(), "l1", "v1"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotMethod != http.MethodDelete {
		t.Errorf("Expected DELETE, got %s", gotMethod)
	}
	if gotPath != "/lists/l1/videos/v1" {
		t.Errorf("Unexpected path: %s", gotPath)
	}
}
