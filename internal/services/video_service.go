package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

type VideoService struct {
	Videos    VideoStore
	Likes     LikeStore
	Comments  CommentStore
	Playlists PlaylistStore
	Users     UserStore
	Media     media.Gateway
	Now       func() time.Time
}

type PublishVideoInput struct {
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoInput leaves a field unchanged when it is nil or empty.
type UpdateVideoInput struct {
	Title         *string
	Description   *string
	ThumbnailPath string
}

func (s *VideoService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utcNow()
}

func validTitle(t string) (string, error) {
	return textField("title", t, models.TitleMinLen, models.TitleMaxLen)
}

func validDescription(d string) (string, error) {
	return textField("description", d, models.DescriptionMinLen, models.DescriptionMaxLen)
}

func (s *VideoService) List(ctx context.Context, q dto.ListVideosQuery) (*dto.Page[models.VideoCard], error) {
	p, err := pipeline.ParseListVideosParams(q.Query, q.UserID, q.SortBy, q.SortType, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}
	items, total, err := s.Videos.List(ctx, p)
	if err != nil {
		return nil, internal(err, "failed to fetch videos")
	}
	return dto.NewPage(items, total, p.Pagination), nil
}

func (s *VideoService) Publish(ctx context.Context, viewer bson.ObjectID, in PublishVideoInput) (*models.Video, error) {
	title, err := validTitle(in.Title)
	if err != nil {
		return nil, err
	}
	desc, err := validDescription(in.Description)
	if err != nil {
		return nil, err
	}
	if in.VideoPath == "" {
		return nil, apperror.Validation("video file is required")
	}
	if in.ThumbnailPath == "" {
		return nil, apperror.Validation("thumbnail is required")
	}
	if err := mediaFile("videoFile", in.VideoPath, media.KindVideo); err != nil {
		return nil, err
	}
	if err := mediaFile("thumbnail", in.ThumbnailPath, media.KindImage); err != nil {
		return nil, err
	}

	file, err := s.Media.Upload(ctx, in.VideoPath, media.KindVideo)
	if err != nil {
		return nil, apperror.Upstream("error while uploading video", err)
	}
	thumb, err := s.Media.Upload(ctx, in.ThumbnailPath, media.KindImage)
	if err != nil {
		return nil, apperror.Upstream("error while uploading thumbnail", err)
	}

	now := s.now()
	v := &models.Video{
		VideoFile:   file.Asset,
		Thumbnail:   thumb.Asset,
		Title:       title,
		Description: desc,
		Duration:    file.Duration,
		IsPublished: true,
		Owner:       viewer,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Videos.Insert(ctx, v); err != nil {
		return nil, internal(err, "failed to save video")
	}
	return v, nil
}

// Get returns a video as seen by viewer and counts the view. Unpublished
// videos are only visible to their owner.
func (s *VideoService) Get(ctx context.Context, viewer, id bson.ObjectID) (*models.VideoDetail, error) {
	v, err := s.Videos.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "video not found")
	}
	if !v.IsPublished && v.Owner != viewer {
		return nil, apperror.NotFound("video not found")
	}

	if err := s.Videos.IncrementViews(ctx, id); err != nil {
		return nil, internal(err, "failed to record view")
	}
	v.Views++
	if !viewer.IsZero() {
		if err := s.Users.PushWatchHistory(ctx, viewer, id); err != nil {
			logger.Log.Warn().Err(err).Str("video", id.Hex()).Msg("record watch history")
		}
	}

	detail := &models.VideoDetail{Video: *v}
	if owner, err := s.Users.Profile(ctx, v.Owner); err == nil {
		detail.OwnerProfile = *owner
	} else {
		detail.OwnerProfile = models.OwnerProfile{ID: v.Owner}
	}
	if detail.LikesCount, err = s.Likes.Count(ctx, models.LikeTargetVideo, id); err != nil {
		return nil, internal(err, "failed to count likes")
	}
	if detail.IsLiked, err = s.Likes.IsLiked(ctx, viewer, models.LikeTargetVideo, id); err != nil {
		return nil, internal(err, "failed to read like state")
	}
	return detail, nil
}

func (s *VideoService) owned(ctx context.Context, viewer, id bson.ObjectID) (*models.Video, error) {
	v, err := s.Videos.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "video not found")
	}
	if v.Owner != viewer {
		return nil, apperror.Forbidden("you are not the owner of this video")
	}
	return v, nil
}

// Update changes title, description and thumbnail. The previous thumbnail
// is removed only after the new one is stored and saved.
func (s *VideoService) Update(ctx context.Context, viewer, id bson.ObjectID, in UpdateVideoInput) (*models.Video, error) {
	if in.Title == nil && in.Description == nil && in.ThumbnailPath == "" {
		return nil, apperror.Validation("nothing to update")
	}
	var title, desc string
	var err error
	if in.Title != nil {
		if title, err = validTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Description != nil {
		if desc, err = validDescription(*in.Description); err != nil {
			return nil, err
		}
	}
	if in.ThumbnailPath != "" {
		if err := mediaFile("thumbnail", in.ThumbnailPath, media.KindImage); err != nil {
			return nil, err
		}
	}

	v, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		v.Title = title
	}
	if in.Description != nil {
		v.Description = desc
	}

	old := v.Thumbnail
	if in.ThumbnailPath != "" {
		up, err := s.Media.Upload(ctx, in.ThumbnailPath, media.KindImage)
		if err != nil {
			return nil, apperror.Upstream("error while uploading thumbnail", err)
		}
		v.Thumbnail = up.Asset
	}
	v.UpdatedAt = s.now()

	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, storeErr(err, "video not found")
	}
	if in.ThumbnailPath != "" {
		if err := s.Media.Remove(ctx, old.PublicID, media.KindImage); err != nil {
			logger.Log.Warn().Err(err).Str("public_id", old.PublicID).Msg("remove replaced thumbnail")
		}
	}
	return v, nil
}

// Delete removes the video file, then the thumbnail, then the document. A
// media failure aborts with the document untouched. Comments, likes and
// playlist references are cleaned up afterwards on a best-effort basis.
func (s *VideoService) Delete(ctx context.Context, viewer, id bson.ObjectID) error {
	v, err := s.owned(ctx, viewer, id)
	if err != nil {
		return err
	}

	if err := s.Media.Remove(ctx, v.VideoFile.PublicID, media.KindVideo); err != nil {
		return apperror.Upstream("error while deleting video file", err)
	}
	if err := s.Media.Remove(ctx, v.Thumbnail.PublicID, media.KindImage); err != nil {
		return apperror.Upstream("error while deleting thumbnail", err)
	}
	if err := s.Videos.Delete(ctx, id); err != nil {
		return storeErr(err, "video not found")
	}

	s.cascade(ctx, id)
	return nil
}

func (s *VideoService) cascade(ctx context.Context, id bson.ObjectID) {
	log := logger.Log.With().Str("video", id.Hex()).Logger()

	commentIDs, err := s.Comments.DeleteByVideo(ctx, id)
	if err != nil {
		log.Warn().Err(err).Msg("delete comments of video")
	}
	if err := s.Likes.DeleteByTargets(ctx, models.LikeTargetComment, commentIDs...); err != nil {
		log.Warn().Err(err).Msg("delete comment likes of video")
	}
	if err := s.Likes.DeleteByTargets(ctx, models.LikeTargetVideo, id); err != nil {
		log.Warn().Err(err).Msg("delete likes of video")
	}
	if err := s.Playlists.PullVideoEverywhere(ctx, id); err != nil {
		log.Warn().Err(err).Msg("remove video from playlists")
	}
}

func (s *VideoService) TogglePublish(ctx context.Context, viewer, id bson.ObjectID) (*models.Video, error) {
	v, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	v.IsPublished = !v.IsPublished
	v.UpdatedAt = s.now()
	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, storeErr(err, "video not found")
	}
	return v, nil
}
