package api

import (
	"context"

	"github.com/vidscope/vidscope-desktop/internal/model"
)

// Backend defines the REST operations the client consumes. The server is
// treated as a correct external collaborator; implementations only move
// JSON over HTTP.
type Backend interface {
	GetVideo(ctx context.Context, id string) (*model.Video, error)
	ListVideos(ctx context.Context, category string, sort model.SortKey) ([]*model.Video, error)
	GetFriendsFeed(ctx context.Context, userID string) ([]*model.Video, error)
	GetCuratedPicks(ctx context.Context) ([]*model.Video, error)
	GetTrending(ctx context.Context) ([]*model.Video, error)

	GetLatestSubmission(ctx context.Context, videoID string) (*model.Submission, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)

	GetLists(ctx context.Context, ownerID string) ([]*model.List, error)
	GetList(ctx context.Context, id string) (*model.List, error)
	CreateList(ctx context.Context, name string) (*model.List, error)
	RenameList(ctx context.Context, id, name string) error
	DeleteList(ctx context.Context, id string) error
	AddListVideo(ctx context.Context, listID, videoID string) error
	RemoveListVideo(ctx context.Context, listID, videoID string) error
}
