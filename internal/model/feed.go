package model

// FeedMode selects one of the Discover presentation strategies
type FeedMode string

const (
	// FeedModeDefault is the plain grid with category filter and sorting
	FeedModeDefault FeedMode = "default"

	// FeedModeFriends shows submissions from followed users
	FeedModeFriends FeedMode = "friends"

	// FeedModeCurated is the Sunday Picks swipe stack
	FeedModeCurated FeedMode = "curated"

	// FeedModeTrending is the Trending This Week rotation
	FeedModeTrending FeedMode = "trending"
)

// String returns the string representation of FeedMode
func (m FeedMode) String() string {
	return string(m)
}

// SortKey selects the client-side ordering applied to the default feed
type SortKey string

const (
	// SortNewest orders by upload timestamp, newest first
	SortNewest SortKey = "newest"

	// SortRatingDesc orders by average rating, highest first
	SortRatingDesc SortKey = "rating_desc"

	// SortRatingAsc orders by average rating, lowest first
	SortRatingAsc SortKey = "rating_asc"
)

// FeedQuery describes which feed to load and how to present it.
// CategoryFilter and Sort only apply to the default mode.
type FeedQuery struct {
	Mode           FeedMode
	CategoryFilter string
	Sort           SortKey
}

// Equal reports whether two queries would produce the same result set
func (q FeedQuery) Equal(other FeedQuery) bool {
	return q.Mode == other.Mode &&
		q.CategoryFilter == other.CategoryFilter &&
		q.Sort == other.Sort
}

// Submission records a user submitting a video under a category
type Submission struct {
	ID         string `json:"id"`
	VideoID    string `json:"videoId"`
	CategoryID string `json:"categoryId"`
	UserID     string `json:"userId,omitempty"`
}

// Category is a display taxonomy entry for submissions
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the minimal profile the client needs for the session and the
// friends feed.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
