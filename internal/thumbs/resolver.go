package thumbs

import (
	"context"
	"net/http"
	"time"

	"github.com/vidscope/vidscope-desktop/internal/cache"
)

// Thumbnail CDN constants. The high-resolution asset only exists for some
// videos; the hq variant is always present.
const (
	DefaultCDNBase = "https://i.ytimg.com/vi"
	MaxResAsset    = "maxresdefault.jpg"
	FallbackAsset  = "hqdefault.jpg"
	ProbeTimeout   = 5 * time.Second
)

// Resolver picks a working thumbnail URL for a YouTube video id. The
// existence probe for the high-resolution asset runs at most once per id
// per session; Resolve never fails, it degrades to the fallback URL.
type Resolver struct {
	baseURL string
	loader  *cache.Loader[string, string]
}

// NewResolver creates a resolver probing the public image CDN through the
// given HTTP client. Passing nil uses a client with a sane probe timeout.
func NewResolver(client *http.Client) *Resolver {
	return newResolver(client, DefaultCDNBase)
}

func newResolver(client *http.Client, baseURL string) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: ProbeTimeout}
	}

	r := &Resolver{baseURL: baseURL}
	r.loader = cache.NewLoader(func(ctx context.Context, youtubeID string) (string, error) {
		return r.probe(ctx, client, youtubeID), nil
	})
	return r
}

// Resolve returns the best available thumbnail URL for the id
func (r *Resolver) Resolve(ctx context.Context, youtubeID string) string {
	url, err := r.loader.Resolve(ctx, youtubeID)
	if err != nil {
		// Only a cancelled wait reaches here; the probe itself never errors
		return r.FallbackURL(youtubeID)
	}
	return url
}

// Probed reports whether the id has already been checked this session
func (r *Resolver) Probed(youtubeID string) bool {
	return r.loader.Has(youtubeID)
}

// probe checks whether the high-resolution asset exists. Any failure at
// all answers with the guaranteed fallback URL.
func (r *Resolver) probe(ctx context.Context, client *http.Client, youtubeID string) string {
	maxRes := r.MaxResURL(youtubeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, maxRes, nil)
	if err != nil {
		return r.FallbackURL(youtubeID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return r.FallbackURL(youtubeID)
	}
	resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return maxRes
	}
	return r.FallbackURL(youtubeID)
}

// MaxResURL returns the high-resolution asset URL for an id
func (r *Resolver) MaxResURL(youtubeID string) string {
	return r.baseURL + "/" + youtubeID + "/" + MaxResAsset
}

// FallbackURL returns the always-available lower-resolution URL for an id
func (r *Resolver) FallbackURL(youtubeID string) string {
	return r.baseURL + "/" + youtubeID + "/" + FallbackAsset
}
