package model

import (
	"testing"
	"time"
)

func TestDefaultListProtections(t *testing.T) {
	defaultList := &List{ID: "d1", Name: "My Videos", IsDefault: true}
	if defaultList.CanRename() {
		t.Error("Default list must not be renamable")
	}
	if defaultList.CanDelete() {
		t.Error("Default list must not be deletable")
	}

	regular := &List{ID: "l1", Name: "Favorites"}
	if !regular.CanRename() || !regular.CanDelete() {
		t.Error("Regular lists must be renamable and deletable")
	}
}

func TestListContains(t *testing.T) {
	list := &List{
		ID:   "l1",
		Name: "Favorites",
		Items: []ListItem{
			{Video: UnresolvedRef("v1"), AddedAt: time.Now()},
			{Video: ResolvedRef(&Video{ID: "v2"}), AddedAt: time.Now()},
		},
	}

	if !list.Contains("v1") {
		t.Error("Expected list to contain unresolved ref v1")
	}
	if !list.Contains("v2") {
		t.Error("Expected list to contain resolved ref v2")
	}
	if list.Contains("v3") {
		t.Error("Did not expect list to contain v3")
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", list.Len())
	}
}

func TestFeedQueryEqual(t *testing.T) {
	a := FeedQuery{Mode: FeedModeDefault, CategoryFilter: "music", Sort: SortNewest}
	b := FeedQuery{Mode: FeedModeDefault, CategoryFilter: "music", Sort: SortNewest}
	c := FeedQuery{Mode: FeedModeDefault, CategoryFilter: "music", Sort: SortRatingAsc}

	if !a.Equal(b) {
		t.Error("Identical queries should be equal")
	}
	if a.Equal(c) {
		t.Error("Queries with different sort keys should differ")
	}
	if a.Equal(FeedQuery{Mode: FeedModeTrending}) {
		t.Error("Queries with different modes should differ")
	}
}
