package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Furqankhan76/Vidtube/database"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
)

// maxWatchHistory bounds the stored history; older entries fall off.
const maxWatchHistory = 200

type UserRepository struct {
	ColUsers *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{ColUsers: db.Collection(database.ColUsers)}
}

// Insert returns ErrDuplicate when the username or email is taken.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	if u.WatchHistory == nil {
		u.WatchHistory = []bson.ObjectID{}
	}
	if _, err := r.ColUsers.InsertOne(ctx, u); err != nil {
		return writeErr(err, "insert user")
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.ColUsers.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, findErr(err, "find user")
	}
	return &u, nil
}

// FindByLogin matches either the username or the email.
func (r *UserRepository) FindByLogin(ctx context.Context, username, email string) (*models.User, error) {
	var or bson.A
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if email != "" {
		or = append(or, bson.M{"email": email})
	}
	if len(or) == 0 {
		return nil, ErrNotFound
	}
	var u models.User
	if err := r.ColUsers.FindOne(ctx, bson.M{"$or": or}).Decode(&u); err != nil {
		return nil, findErr(err, "find user by login")
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	return exists(ctx, r.ColUsers, bson.M{"_id": id})
}

func (r *UserRepository) set(ctx context.Context, id bson.ObjectID, fields bson.M, what string) error {
	fields["updated_at"] = time.Now().UTC()
	res, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return writeErr(err, what)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error {
	return r.set(ctx, id, bson.M{"refresh_token": token}, "set refresh token")
}

func (r *UserRepository) SetPasswordHash(ctx context.Context, id bson.ObjectID, hash string) error {
	return r.set(ctx, id, bson.M{"password_hash": hash}, "set password")
}

// UpdateAccount returns ErrDuplicate when email belongs to another user.
func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) error {
	return r.set(ctx, id, bson.M{"full_name": fullName, "email": email}, "update account")
}

func (r *UserRepository) SetAvatar(ctx context.Context, id bson.ObjectID, a models.Asset) error {
	return r.set(ctx, id, bson.M{"avatar": a}, "set avatar")
}

func (r *UserRepository) SetCoverImage(ctx context.Context, id bson.ObjectID, a models.Asset) error {
	return r.set(ctx, id, bson.M{"cover_image": a}, "set cover image")
}

// PushWatchHistory moves video to the front of the user's history in one
// update, dropping any earlier occurrence.
func (r *UserRepository) PushWatchHistory(ctx context.Context, id, video bson.ObjectID) error {
	update := mongo.Pipeline{{{Key: "$set", Value: bson.D{{Key: "watch_history", Value: bson.D{
		{Key: "$slice", Value: bson.A{
			bson.D{{Key: "$concatArrays", Value: bson.A{
				bson.A{video},
				bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$watch_history", bson.A{}}}}},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", video}}}},
				}}},
			}}},
			maxWatchHistory,
		}},
	}}}}}}
	_, err := r.ColUsers.UpdateOne(ctx, bson.M{"_id": id}, update)
	return errors.WithMessage(err, "push watch history")
}

// ChannelProfile resolves username to its public profile as seen by viewer.
func (r *UserRepository) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (*models.ChannelProfile, error) {
	rows, err := aggregateAll[models.ChannelProfile](ctx, r.ColUsers, pipeline.ChannelProfile(username, viewer))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (r *UserRepository) Profile(ctx context.Context, id bson.ObjectID) (*models.OwnerProfile, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.OwnerProfile{ID: u.ID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar.URL}, nil
}
