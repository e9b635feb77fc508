package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

type CommentService struct {
	Comments CommentStore
	Videos   VideoStore
	Likes    LikeStore
}

func validComment(c string) (string, error) {
	return textField("content", c, 1, models.CommentMaxLen)
}

func (s *CommentService) videoMustExist(ctx context.Context, video bson.ObjectID) error {
	ok, err := s.Videos.Exists(ctx, video)
	if err != nil {
		return internal(err, "failed to look up video")
	}
	if !ok {
		return apperror.NotFound("video not found")
	}
	return nil
}

func (s *CommentService) List(ctx context.Context, viewer, video bson.ObjectID, page, limit int64) (*dto.Page[models.CommentView], error) {
	if err := s.videoMustExist(ctx, video); err != nil {
		return nil, err
	}
	p := pipeline.NewPagination(page, limit)
	items, total, err := s.Comments.ListByVideo(ctx, video, viewer, p)
	if err != nil {
		return nil, internal(err, "failed to fetch comments")
	}
	return dto.NewPage(items, total, p), nil
}

func (s *CommentService) Add(ctx context.Context, viewer, video bson.ObjectID, content string) (*models.Comment, error) {
	content, err := validComment(content)
	if err != nil {
		return nil, err
	}
	if err := s.videoMustExist(ctx, video); err != nil {
		return nil, err
	}

	now := utcNow()
	c := &models.Comment{Content: content, Video: video, Owner: viewer, CreatedAt: now, UpdatedAt: now}
	if err := s.Comments.Insert(ctx, c); err != nil {
		return nil, internal(err, "failed to add comment")
	}
	return c, nil
}

func (s *CommentService) owned(ctx context.Context, viewer, id bson.ObjectID) (*models.Comment, error) {
	c, err := s.Comments.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "comment not found")
	}
	if c.Owner != viewer {
		return nil, apperror.Forbidden("you are not the owner of this comment")
	}
	return c, nil
}

func (s *CommentService) Update(ctx context.Context, viewer, id bson.ObjectID, content string) (*models.Comment, error) {
	content, err := validComment(content)
	if err != nil {
		return nil, err
	}
	c, err := s.owned(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	now := utcNow()
	if err := s.Comments.UpdateContent(ctx, id, content, now); err != nil {
		return nil, storeErr(err, "comment not found")
	}
	c.Content = content
	c.UpdatedAt = now
	return c, nil
}

func (s *CommentService) Delete(ctx context.Context, viewer, id bson.ObjectID) error {
	if _, err := s.owned(ctx, viewer, id); err != nil {
		return err
	}
	if err := s.Comments.Delete(ctx, id); err != nil {
		return storeErr(err, "comment not found")
	}
	if err := s.Likes.DeleteByTargets(ctx, models.LikeTargetComment, id); err != nil {
		logger.Log.Warn().Err(err).Str("comment", id.Hex()).Msg("delete likes of comment")
	}
	return nil
}
