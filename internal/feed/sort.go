package feed

import (
	"sort"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// SortVideos orders items by the given key and returns the same slice.
// Sorting is stable and idempotent; a missing rating counts as 0 under
// both rating orders. An unknown key leaves the order untouched.
func SortVideos(items []*model.Video, key model.SortKey) []*model.Video {
	switch key {
	case model.SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].UploadDate.After(items[j].UploadDate)
		})
	case model.SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating() > items[j].Rating()
		})
	case model.SortRatingAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating() < items[j].Rating()
		})
	}
	return items
}
