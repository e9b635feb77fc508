package services

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/authtoken"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/repository"
)

type UserService struct {
	Users  UserStore
	Videos VideoStore
	Media  media.Gateway
	Tokens *authtoken.Issuer
}

type RegisterInput struct {
	FullName   string
	Email      string
	Username   string
	Password   string
	AvatarPath string
	CoverPath  string
}

type Tokens struct {
	Access  string
	Refresh string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	if in.FullName == "" || in.Email == "" || in.Username == "" || in.Password == "" {
		return nil, apperror.Validation("all fields are required")
	}
	if in.AvatarPath == "" {
		return nil, apperror.Validation("avatar file is required")
	}
	if err := mediaFile("avatar", in.AvatarPath, media.KindImage); err != nil {
		return nil, err
	}
	if in.CoverPath != "" {
		if err := mediaFile("coverImage", in.CoverPath, media.KindImage); err != nil {
			return nil, err
		}
	}

	if _, err := s.Users.FindByLogin(ctx, in.Username, in.Email); err == nil {
		return nil, apperror.Conflict("user with email or username already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, internal(err, "failed to look up user")
	}

	avatar, err := s.Media.Upload(ctx, in.AvatarPath, media.KindImage)
	if err != nil {
		return nil, apperror.Upstream("error while uploading avatar", err)
	}
	var cover *models.Asset
	if in.CoverPath != "" {
		up, err := s.Media.Upload(ctx, in.CoverPath, media.KindImage)
		if err != nil {
			return nil, apperror.Upstream("error while uploading cover image", err)
		}
		cover = &up.Asset
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, internal(err, "failed to hash password")
	}

	now := utcNow()
	u := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		Avatar:       avatar.Asset,
		CoverImage:   cover,
		WatchHistory: []bson.ObjectID{},
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("user with email or username already exists")
		}
		return nil, internal(err, "failed to register user")
	}
	return u, nil
}

func (s *UserService) issue(ctx context.Context, u *models.User) (*Tokens, error) {
	access, err := s.Tokens.Access(u.ID.Hex(), u.Username, u.Email)
	if err != nil {
		return nil, internal(err, "failed to generate access token")
	}
	refresh, err := s.Tokens.Refresh(u.ID.Hex())
	if err != nil {
		return nil, internal(err, "failed to generate refresh token")
	}
	if err := s.Users.SetRefreshToken(ctx, u.ID, refresh); err != nil {
		return nil, storeErr(err, "user not found")
	}
	u.RefreshToken = refresh
	return &Tokens{Access: access, Refresh: refresh}, nil
}

// Login accepts either the username or the email alongside the password.
func (s *UserService) Login(ctx context.Context, username, email, password string) (*models.User, *Tokens, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" && email == "" {
		return nil, nil, apperror.Validation("username or email is required")
	}
	if password == "" {
		return nil, nil, apperror.Validation("password is required")
	}

	u, err := s.Users.FindByLogin(ctx, username, email)
	if err != nil {
		return nil, nil, storeErr(err, "user does not exist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperror.Unauthorized("invalid user credentials")
	}

	toks, err := s.issue(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	return u, toks, nil
}

// Refresh rotates the token pair. The presented refresh token must be the
// one last issued to the user.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("unauthorized request")
	}
	claims, err := s.Tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	id, err := bson.ObjectIDFromHex(claims.UID)
	if err != nil {
		return nil, apperror.Unauthorized("invalid refresh token")
	}
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.Unauthorized("invalid refresh token")
		}
		return nil, internal(err, "failed to look up user")
	}
	if u.RefreshToken != refreshToken {
		return nil, apperror.Unauthorized("refresh token is expired or used")
	}
	return s.issue(ctx, u)
}

func (s *UserService) Logout(ctx context.Context, viewer bson.ObjectID) error {
	return storeErr(s.Users.SetRefreshToken(ctx, viewer, ""), "user not found")
}

func (s *UserService) ChangePassword(ctx context.Context, viewer bson.ObjectID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperror.Validation("old and new password are required")
	}
	u, err := s.Users.FindByID(ctx, viewer)
	if err != nil {
		return storeErr(err, "user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(oldPassword)); err != nil {
		return apperror.Validation("invalid old password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return internal(err, "failed to hash password")
	}
	return storeErr(s.Users.SetPasswordHash(ctx, viewer, string(hash)), "user not found")
}

func (s *UserService) Current(ctx context.Context, viewer bson.ObjectID) (*models.User, error) {
	u, err := s.Users.FindByID(ctx, viewer)
	if err != nil {
		return nil, storeErr(err, "user not found")
	}
	return u, nil
}

func (s *UserService) UpdateAccount(ctx context.Context, viewer bson.ObjectID, fullName, email string) (*models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	if fullName == "" || email == "" {
		return nil, apperror.Validation("fullName and email are required")
	}
	if err := s.Users.UpdateAccount(ctx, viewer, fullName, email); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Conflict("email is already in use")
		}
		return nil, storeErr(err, "user not found")
	}
	return s.Current(ctx, viewer)
}

// UpdateAvatar stores the new image first and only then drops the old one.
func (s *UserService) UpdateAvatar(ctx context.Context, viewer bson.ObjectID, path string) (*models.User, error) {
	if path == "" {
		return nil, apperror.Validation("avatar file is missing")
	}
	if err := mediaFile("avatar", path, media.KindImage); err != nil {
		return nil, err
	}
	u, err := s.Current(ctx, viewer)
	if err != nil {
		return nil, err
	}
	up, err := s.Media.Upload(ctx, path, media.KindImage)
	if err != nil {
		return nil, apperror.Upstream("error while uploading avatar", err)
	}
	if err := s.Users.SetAvatar(ctx, viewer, up.Asset); err != nil {
		return nil, storeErr(err, "user not found")
	}
	s.dropImage(ctx, u.Avatar.PublicID)
	u.Avatar = up.Asset
	return u, nil
}

func (s *UserService) UpdateCoverImage(ctx context.Context, viewer bson.ObjectID, path string) (*models.User, error) {
	if path == "" {
		return nil, apperror.Validation("cover image file is missing")
	}
	if err := mediaFile("coverImage", path, media.KindImage); err != nil {
		return nil, err
	}
	u, err := s.Current(ctx, viewer)
	if err != nil {
		return nil, err
	}
	up, err := s.Media.Upload(ctx, path, media.KindImage)
	if err != nil {
		return nil, apperror.Upstream("error while uploading cover image", err)
	}
	if err := s.Users.SetCoverImage(ctx, viewer, up.Asset); err != nil {
		return nil, storeErr(err, "user not found")
	}
	if !u.CoverImage.IsZero() {
		s.dropImage(ctx, u.CoverImage.PublicID)
	}
	u.CoverImage = &up.Asset
	return u, nil
}

func (s *UserService) dropImage(ctx context.Context, publicID string) {
	if err := s.Media.Remove(ctx, publicID, media.KindImage); err != nil {
		logger.Log.Warn().Err(err).Str("public_id", publicID).Msg("remove replaced image")
	}
}

func (s *UserService) ChannelProfile(ctx context.Context, viewer bson.ObjectID, username string) (*models.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperror.Validation("username is missing")
	}
	p, err := s.Users.ChannelProfile(ctx, username, viewer)
	if err != nil {
		return nil, storeErr(err, "channel does not exist")
	}
	return p, nil
}

// WatchHistory returns the viewer's watched videos, most recent first.
func (s *UserService) WatchHistory(ctx context.Context, viewer bson.ObjectID) ([]models.VideoCard, error) {
	u, err := s.Current(ctx, viewer)
	if err != nil {
		return nil, err
	}
	cards, err := s.Videos.CardsByIDs(ctx, u.WatchHistory)
	if err != nil {
		return nil, internal(err, "failed to fetch watch history")
	}
	return cards, nil
}
