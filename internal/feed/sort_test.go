package feed

import (
	"testing"
	"time"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

func rated(id string, rating float64) *model.Video {
	return &model.Video{ID: id, AvgRating: &rating}
}

func unrated(id string) *model.Video {
	return &model.Video{ID: id}
}

func ids(items []*model.Video) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortNewest(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []*model.Video{
		{ID: "old", UploadDate: base},
		{ID: "new", UploadDate: base.AddDate(0, 1, 0)},
		{ID: "mid", UploadDate: base.AddDate(0, 0, 10)},
	}

	SortVideos(items, model.SortNewest)

	if got := ids(items); !equalIDs(got, "new", "mid", "old") {
		t.Errorf("Expected [new mid old], got %v", got)
	}
}

func TestSortRating(t *testing.T) {
	tests := []struct {
		key      model.SortKey
		expected []string
	}{
		{model.SortRatingDesc, []string{"high", "low", "none"}},
		{model.SortRatingAsc, []string{"none", "low", "high"}},
	}

	for _, test := range tests {
		items := []*model.Video{
			rated("low", 2.5),
			unrated("none"),
			rated("high", 4.8),
		}

		SortVideos(items, test.key)

		if got := ids(items); !equalIDs(got, test.expected...) {
			t.Errorf("SortVideos(%s) order = %v, expected %v", test.key, got, test.expected)
		}
	}
}

func TestMissingRatingSortsAsZero(t *testing.T) {
	// An unrated item must not sort above a 0-rated one in either order
	items := []*model.Video{unrated("none"), rated("zero", 0)}

	SortVideos(items, model.SortRatingDesc)
	if got := ids(items); !equalIDs(got, "none", "zero") {
		t.Errorf("Equal ratings must keep input order (stable), got %v", got)
	}

	SortVideos(items, model.SortRatingAsc)
	if got := ids(items); !equalIDs(got, "none", "zero") {
		t.Errorf("Equal ratings must keep input order (stable), got %v", got)
	}
}

func TestSortIdempotent(t *testing.T) {
	keys := []model.SortKey{model.SortNewest, model.SortRatingDesc, model.SortRatingAsc}

	for _, key := range keys {
		items := []*model.Video{
			rated("a", 3),
			rated("b", 5),
			unrated("c"),
			rated("d", 1),
		}

		SortVideos(items, key)
		once := append([]string(nil), ids(items)...)

		SortVideos(items, key)
		twice := ids(items)

		if !equalIDs(once, twice...) {
			t.Errorf("Sorting by %s is not idempotent: %v then %v", key, once, twice)
		}
	}
}

func TestUnknownKeyKeepsOrder(t *testing.T) {
	items := []*model.Video{unrated("b"), unrated("a")}
	SortVideos(items, model.SortKey(""))
	if got := ids(items); !equalIDs(got, "b", "a") {
		t.Errorf("Expected untouched order [b a], got %v", got)
	}
}
