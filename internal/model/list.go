package model

import "time"

// ListItem is a single membership entry of a list
type ListItem struct {
	Video   VideoRef  `json:"video"`
	AddedAt time.Time `json:"addedAt"`
}

// List is a user-owned, ordered collection of videos. Exactly one list
// per user has IsDefault set; that list can be neither renamed nor
// deleted. List state is authoritative on the server; values held here
// are transient projections refreshed after every mutation.
type List struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	IsDefault bool       `json:"isDefault"`
	Items     []ListItem `json:"videoItems"`
	OwnerID   string     `json:"ownerId"`
}

// CanRename returns false for the protected default list
func (l *List) CanRename() bool {
	return !l.IsDefault
}

// CanDelete returns false for the protected default list
func (l *List) CanDelete() bool {
	return !l.IsDefault
}

// Contains reports whether the list holds a reference to the given video
func (l *List) Contains(videoID string) bool {
	for _, item := range l.Items {
		if item.Video.ID() == videoID {
			return true
		}
	}
	return false
}

// Len returns the number of videos in the list
func (l *List) Len() int {
	return len(l.Items)
}
