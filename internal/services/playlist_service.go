package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

type PlaylistService struct {
	Playlists PlaylistStore
	Videos    VideoStore
	Users     UserStore
}

func validPlaylistName(n string) (string, error) {
	return textField("name", n, 1, models.PlaylistNameMaxLen)
}

func validPlaylistDescription(d string) (string, error) {
	return textField("description", d, 0, models.PlaylistDescriptionMaxLen)
}

func (s *PlaylistService) Create(ctx context.Context, viewer bson.ObjectID, name, description string) (*models.Playlist, error) {
	name, err := validPlaylistName(name)
	if err != nil {
		return nil, err
	}
	if description, err = validPlaylistDescription(description); err != nil {
		return nil, err
	}

	now := utcNow()
	p := &models.Playlist{
		Name:        name,
		Description: description,
		Owner:       viewer,
		Videos:      []bson.ObjectID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Playlists.Insert(ctx, p); err != nil {
		return nil, internal(err, "failed to create playlist")
	}
	return p, nil
}

func (s *PlaylistService) ListByUser(ctx context.Context, user bson.ObjectID) ([]models.PlaylistSummary, error) {
	ok, err := s.Users.Exists(ctx, user)
	if err != nil {
		return nil, internal(err, "failed to look up user")
	}
	if !ok {
		return nil, apperror.NotFound("user not found")
	}
	lists, err := s.Playlists.ListByOwner(ctx, user)
	if err != nil {
		return nil, internal(err, "failed to fetch playlists")
	}
	return lists, nil
}

// Get returns the playlist with its videos in playlist order.
func (s *PlaylistService) Get(ctx context.Context, id bson.ObjectID) (*models.PlaylistView, error) {
	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "playlist not found")
	}
	cards, err := s.Videos.CardsByIDs(ctx, p.Videos)
	if err != nil {
		return nil, internal(err, "failed to fetch playlist videos")
	}

	view := &models.PlaylistView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       models.OwnerProfile{ID: p.Owner},
		Videos:      cards,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if owner, err := s.Users.Profile(ctx, p.Owner); err == nil {
		view.Owner = *owner
	}
	return view, nil
}

func (s *PlaylistService) owned(ctx context.Context, viewer, id bson.ObjectID) (*models.Playlist, error) {
	p, err := s.Playlists.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "playlist not found")
	}
	if p.Owner != viewer {
		return nil, apperror.Forbidden("you are not the owner of this playlist")
	}
	return p, nil
}

func (s *PlaylistService) Update(ctx context.Context, viewer, id bson.ObjectID, name, description *string) (*models.Playlist, error) {
	if name == nil && description == nil {
		return nil, apperror.Validation("nothing to update")
	}
	var newName, newDesc string
	var err error
	if name != nil {
		if newName, err = validPlaylistName(*name); err != nil {
			return nil, err
		}
	}
	if description != nil {
		if newDesc, err = validPlaylistDescription(*description); err != nil {
			return nil, err
		}
	}

	p, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		p.Name = newName
	}
	if description != nil {
		p.Description = newDesc
	}

	p.UpdatedAt = utcNow()
	if err := s.Playlists.UpdateDetails(ctx, id, p.Name, p.Description, p.UpdatedAt); err != nil {
		return nil, storeErr(err, "playlist not found")
	}
	return p, nil
}

func (s *PlaylistService) Delete(ctx context.Context, viewer, id bson.ObjectID) error {
	if _, err := s.owned(ctx, viewer, id); err != nil {
		return err
	}
	return storeErr(s.Playlists.Delete(ctx, id), "playlist not found")
}

func (s *PlaylistService) AddVideo(ctx context.Context, viewer, video, id bson.ObjectID) (*models.Playlist, error) {
	p, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.Videos.Exists(ctx, video)
	if err != nil {
		return nil, internal(err, "failed to look up video")
	}
	if !ok {
		return nil, apperror.NotFound("video not found")
	}
	if p.Contains(video) {
		return nil, apperror.Validation("video already exists in playlist")
	}

	now := utcNow()
	added, err := s.Playlists.AddVideo(ctx, id, video, now)
	if err != nil {
		return nil, internal(err, "failed to add video to playlist")
	}
	if !added {
		return nil, apperror.Validation("video already exists in playlist")
	}
	p.Videos = append(p.Videos, video)
	p.UpdatedAt = now
	return p, nil
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, viewer, video, id bson.ObjectID) (*models.Playlist, error) {
	p, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if !p.Contains(video) {
		return nil, apperror.Validation("video does not exist in playlist")
	}

	now := utcNow()
	removed, err := s.Playlists.RemoveVideo(ctx, id, video, now)
	if err != nil {
		return nil, internal(err, "failed to remove video from playlist")
	}
	if !removed {
		return nil, apperror.Validation("video does not exist in playlist")
	}

	kept := p.Videos[:0]
	for _, v := range p.Videos {
		if v != video {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	p.UpdatedAt = now
	return p, nil
}
