package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	PlaylistNameMaxLen        = 100
	PlaylistDescriptionMaxLen = 500
)

type Playlist struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Name        string          `json:"name"        bson:"name"`
	Description string          `json:"description" bson:"description"`
	Owner       bson.ObjectID   `json:"owner"       bson:"owner"`
	Videos      []bson.ObjectID `json:"videos"      bson:"videos"`
	CreatedAt   time.Time       `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updated_at"`
}

// Contains reports whether the playlist already holds video.
func (p *Playlist) Contains(video bson.ObjectID) bool {
	for _, v := range p.Videos {
		if v == video {
			return true
		}
	}
	return false
}

type PlaylistSummary struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	Name        string        `json:"name"        bson:"name"`
	Description string        `json:"description" bson:"description"`
	TotalVideos int64         `json:"totalVideos" bson:"total_videos"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}

type PlaylistView struct {
	ID          bson.ObjectID `json:"id"          bson:"_id"`
	Name        string        `json:"name"        bson:"name"`
	Description string        `json:"description" bson:"description"`
	Owner       OwnerProfile  `json:"owner"       bson:"owner"`
	Videos      []VideoCard   `json:"videos"      bson:"videos"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}
