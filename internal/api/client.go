package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// HTTP client constants
const (
	RequestTimeout        = 30 * time.Second
	DialTimeout           = 10 * time.Second
	KeepAliveInterval     = 30 * time.Second
	IdleConnTimeout       = 90 * time.Second
	ResponseHeaderTimeout = 10 * time.Second
	MaxIdleConns          = 100
	MaxIdleConnsPerHost   = 10
	MaxRedirects          = 5
)

// APIError describes a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Method     string
	Path       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// TokenSource supplies the current bearer token; auth is owned by an
// external collaborator and only consumed here.
type TokenSource func() string

// Client is the JSON-over-HTTP backend client
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string, token TokenSource) *Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   DialTimeout,
			KeepAlive: KeepAliveInterval,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConnsPerHost,
		IdleConnTimeout:       IdleConnTimeout,
		ResponseHeaderTimeout: ResponseHeaderTimeout,
	}

	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		},
	}
}

// GetVideo fetches the hydrated form of a single video
func (c *Client) GetVideo(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	if err := c.doJSON(ctx, http.MethodGet, "/videos/"+url.PathEscape(id), nil, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// ListVideos fetches the default feed, optionally filtered by category.
// The sort key is forwarded so the server can pre-order; the feed
// controller re-applies it client-side regardless.
func (c *Client) ListVideos(ctx context.Context, category string, sort model.SortKey) ([]*model.Video, error) {
	values := url.Values{}
	if category != "" {
		values.Set("category", category)
	}
	if sort != "" {
		values.Set("sort", string(sort))
	}

	path := "/videos"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var videos []*model.Video
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetFriendsFeed fetches submissions from users the given user follows
func (c *Client) GetFriendsFeed(ctx context.Context, userID string) ([]*model.Video, error) {
	var videos []*model.Video
	path := "/users/" + url.PathEscape(userID) + "/friends-feed"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetCuratedPicks fetches the Sunday Picks candidate queue
func (c *Client) GetCuratedPicks(ctx context.Context) ([]*model.Video, error) {
	var videos []*model.Video
	if err := c.doJSON(ctx, http.MethodGet, "/feeds/curated", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetTrending fetches the Trending This Week sequence
func (c *Client) GetTrending(ctx context.Context) ([]*model.Video, error) {
	var videos []*model.Video
	if err := c.doJSON(ctx, http.MethodGet, "/feeds/trending", nil, &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

// GetLatestSubmission fetches the most recent submission for a video
func (c *Client) GetLatestSubmission(ctx context.Context, videoID string) (*model.Submission, error) {
	var submission model.Submission
	path := "/videos/" + url.PathEscape(videoID) + "/submissions/latest"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// GetCategory fetches a category by id
func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories/"+url.PathEscape(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// GetLists fetches all lists owned by a user
func (c *Client) GetLists(ctx context.Context, ownerID string) ([]*model.List, error) {
	var lists []*model.List
	path := "/users/" + url.PathEscape(ownerID) + "/lists"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetList fetches a single list with its membership
func (c *Client) GetList(ctx context.Context, id string) (*model.List, error) {
	var list model.List
	if err := c.doJSON(ctx, http.MethodGet, "/lists/"+url.PathEscape(id), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateList creates a new list and returns the server's view of it
func (c *Client) CreateList(ctx context.Context, name string) (*model.List, error) {
	var list model.List
	body := map[string]string{"name": name}
	if err := c.doJSON(ctx, http.MethodPost, "/lists", body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RenameList renames an existing list
func (c *Client) RenameList(ctx context.Context, id, name string) error {
	body := map[string]string{"name": name}
	return c.doJSON(ctx, http.MethodPatch, "/lists/"+url.PathEscape(id), body, nil)
}

// DeleteList removes a list
func (c *Client) DeleteList(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/lists/"+url.PathEscape(id), nil, nil)
}

// AddListVideo appends a video reference to a list
func (c *Client) AddListVideo(ctx context.Context, listID, videoID string) error {
	body := map[string]string{"videoId": videoID}
	return c.doJSON(ctx, http.MethodPost, "/lists/"+url.PathEscape(listID)+"/videos", body, nil)
}

// RemoveListVideo removes a video reference from a list
func (c *Client) RemoveListVideo(ctx context.Context, listID, videoID string) error {
	path := "/lists/" + url.PathEscape(listID) + "/videos/" + url.PathEscape(videoID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// doJSON performs one request/response round-trip. A nil out discards the
// response body; a nil body sends no payload.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Method: method, Path: path}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
