package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Video is the fully-hydrated display form of a video. Instances are
// treated as immutable after creation; a refresh replaces the whole
// value instead of mutating fields in place.
type Video struct {
	ID           string    `json:"id"`
	YouTubeID    string    `json:"youtubeId"`
	Title        string    `json:"title"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	UploadDate   time.Time `json:"uploadDate,omitempty"`
	AvgRating    *float64  `json:"avgRating,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
}

// Rating returns the average rating, treating a missing rating as 0.
func (v *Video) Rating() float64 {
	if v.AvgRating == nil {
		return 0
	}
	return *v.AvgRating
}

// HasRating returns true if the video carries an average rating
func (v *Video) HasRating() bool {
	return v.AvgRating != nil
}

// VideoRef references a video either by bare identifier or as an embedded
// object. Consumers must check IsResolved before reading display fields;
// an unresolved ref requires a lookup step first.
type VideoRef struct {
	id    string
	video *Video
}

// UnresolvedRef creates a reference that carries only the video identifier
func UnresolvedRef(id string) VideoRef {
	return VideoRef{id: id}
}

// ResolvedRef creates a reference backed by a hydrated video
func ResolvedRef(v *Video) VideoRef {
	if v == nil {
		return VideoRef{}
	}
	return VideoRef{id: v.ID, video: v}
}

// ID returns the video identifier, available in both shapes
func (r VideoRef) ID() string {
	return r.id
}

// IsResolved returns true when the full video object is available
func (r VideoRef) IsResolved() bool {
	return r.video != nil
}

// Video returns the hydrated video and true, or nil and false for an
// id-only reference.
func (r VideoRef) Video() (*Video, bool) {
	return r.video, r.video != nil
}

// Resolve returns a copy of the reference hydrated with the given video
func (r VideoRef) Resolve(v *Video) VideoRef {
	return ResolvedRef(v)
}

// UnmarshalJSON accepts both reference shapes the backend emits: a bare
// string id and a full embedded object.
func (r *VideoRef) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = UnresolvedRef(id)
		return nil
	}

	var v Video
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("video reference is neither an id nor an object: %w", err)
	}
	*r = ResolvedRef(&v)
	return nil
}

// MarshalJSON writes the id-only form for unresolved refs and the full
// object otherwise.
func (r VideoRef) MarshalJSON() ([]byte, error) {
	if r.video != nil {
		return json.Marshal(r.video)
	}
	return json.Marshal(r.id)
}
