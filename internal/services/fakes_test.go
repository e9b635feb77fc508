package services

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/models"
	"github.com/Furqankhan76/Vidtube/internal/pipeline"
	"github.com/Furqankhan76/Vidtube/internal/repository"
)

var ctx = context.Background()

// fakeVideos

type fakeVideos struct {
	docs  map[bson.ObjectID]*models.Video
	views map[bson.ObjectID]int
}

func newFakeVideos() *fakeVideos {
	return &fakeVideos{docs: map[bson.ObjectID]*models.Video{}, views: map[bson.ObjectID]int{}}
}

func (f *fakeVideos) add(v models.Video) *models.Video {
	if v.ID.IsZero() {
		v.ID = bson.NewObjectID()
	}
	f.docs[v.ID] = &v
	return &v
}

func (f *fakeVideos) List(_ context.Context, p pipeline.ListVideosParams) ([]models.VideoCard, int64, error) {
	var all []models.VideoCard
	for _, v := range f.docs {
		if p.OwnerID != nil && v.Owner != *p.OwnerID {
			continue
		}
		all = append(all, models.VideoCard{ID: v.ID, Title: v.Title, CreatedAt: v.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID.Hex() < all[j].ID.Hex() })
	total := int64(len(all))
	start := p.Skip()
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (f *fakeVideos) Insert(_ context.Context, v *models.Video) error {
	v.ID = bson.NewObjectID()
	cp := *v
	f.docs[v.ID] = &cp
	return nil
}

func (f *fakeVideos) FindByID(_ context.Context, id bson.ObjectID) (*models.Video, error) {
	v, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVideos) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeVideos) Update(_ context.Context, v *models.Video) error {
	if _, ok := f.docs[v.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *v
	f.docs[v.ID] = &cp
	return nil
}

func (f *fakeVideos) IncrementViews(_ context.Context, id bson.ObjectID) error {
	if v, ok := f.docs[id]; ok {
		v.Views++
	}
	return nil
}

func (f *fakeVideos) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeVideos) CardsByIDs(_ context.Context, ids []bson.ObjectID) ([]models.VideoCard, error) {
	out := []models.VideoCard{}
	for _, id := range ids {
		if v, ok := f.docs[id]; ok {
			out = append(out, models.VideoCard{ID: v.ID, Title: v.Title})
		}
	}
	return out, nil
}

// fakeLikes enforces one like per (user, target) like the unique index does.

type fakeLikes struct {
	docs []models.Like
}

func likeRef(l models.Like, target models.LikeTarget) *bson.ObjectID {
	switch target {
	case models.LikeTargetVideo:
		return l.Video
	case models.LikeTargetComment:
		return l.Comment
	default:
		return l.Tweet
	}
}

func (f *fakeLikes) find(user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) int {
	for i, l := range f.docs {
		if ref := likeRef(l, target); l.LikedBy == user && ref != nil && *ref == id {
			return i
		}
	}
	return -1
}

func (f *fakeLikes) Toggle(_ context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	if i := f.find(user, target, id); i >= 0 {
		f.docs = append(f.docs[:i], f.docs[i+1:]...)
		return false, nil
	}
	f.docs = append(f.docs, models.NewLike(user, target, id, time.Now()))
	return true, nil
}

func (f *fakeLikes) Count(_ context.Context, target models.LikeTarget, id bson.ObjectID) (int64, error) {
	var n int64
	for _, l := range f.docs {
		if ref := likeRef(l, target); ref != nil && *ref == id {
			n++
		}
	}
	return n, nil
}

func (f *fakeLikes) IsLiked(_ context.Context, user bson.ObjectID, target models.LikeTarget, id bson.ObjectID) (bool, error) {
	return f.find(user, target, id) >= 0, nil
}

func (f *fakeLikes) DeleteByTargets(_ context.Context, target models.LikeTarget, ids ...bson.ObjectID) error {
	drop := map[bson.ObjectID]bool{}
	for _, id := range ids {
		drop[id] = true
	}
	kept := f.docs[:0]
	for _, l := range f.docs {
		if ref := likeRef(l, target); ref != nil && drop[*ref] {
			continue
		}
		kept = append(kept, l)
	}
	f.docs = kept
	return nil
}

func (f *fakeLikes) LikedVideos(_ context.Context, user bson.ObjectID) ([]models.VideoCard, error) {
	out := []models.VideoCard{}
	for _, l := range f.docs {
		if l.LikedBy == user && l.Video != nil {
			out = append(out, models.VideoCard{ID: *l.Video})
		}
	}
	return out, nil
}

// fakeComments

type fakeComments struct {
	docs map[bson.ObjectID]*models.Comment
}

func newFakeComments() *fakeComments {
	return &fakeComments{docs: map[bson.ObjectID]*models.Comment{}}
}

func (f *fakeComments) ListByVideo(_ context.Context, video, _ bson.ObjectID, p pipeline.Pagination) ([]models.CommentView, int64, error) {
	out := []models.CommentView{}
	for _, c := range f.docs {
		if c.Video == video {
			out = append(out, models.CommentView{ID: c.ID, Content: c.Content, Video: c.Video})
		}
	}
	total := int64(len(out))
	if int64(len(out)) > p.Limit {
		out = out[:p.Limit]
	}
	return out, total, nil
}

func (f *fakeComments) Insert(_ context.Context, c *models.Comment) error {
	c.ID = bson.NewObjectID()
	cp := *c
	f.docs[c.ID] = &cp
	return nil
}

func (f *fakeComments) FindByID(_ context.Context, id bson.ObjectID) (*models.Comment, error) {
	c, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeComments) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeComments) UpdateContent(_ context.Context, id bson.ObjectID, content string, now time.Time) error {
	c, ok := f.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Content, c.UpdatedAt = content, now
	return nil
}

func (f *fakeComments) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakeComments) DeleteByVideo(_ context.Context, video bson.ObjectID) ([]bson.ObjectID, error) {
	var ids []bson.ObjectID
	for id, c := range f.docs {
		if c.Video == video {
			ids = append(ids, id)
			delete(f.docs, id)
		}
	}
	return ids, nil
}

// fakeTweets

type fakeTweets struct {
	docs map[bson.ObjectID]*models.Tweet
}

func newFakeTweets() *fakeTweets {
	return &fakeTweets{docs: map[bson.ObjectID]*models.Tweet{}}
}

func (f *fakeTweets) Insert(_ context.Context, t *models.Tweet) error {
	t.ID = bson.NewObjectID()
	cp := *t
	f.docs[t.ID] = &cp
	return nil
}

func (f *fakeTweets) FindByID(_ context.Context, id bson.ObjectID) (*models.Tweet, error) {
	t, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTweets) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeTweets) ListByOwner(_ context.Context, owner, _ bson.ObjectID) ([]models.TweetView, error) {
	out := []models.TweetView{}
	for _, t := range f.docs {
		if t.Owner == owner {
			out = append(out, models.TweetView{ID: t.ID, Content: t.Content})
		}
	}
	return out, nil
}

func (f *fakeTweets) UpdateContent(_ context.Context, id bson.ObjectID, content string, now time.Time) error {
	t, ok := f.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.Content, t.UpdatedAt = content, now
	return nil
}

func (f *fakeTweets) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

// fakePlaylists

type fakePlaylists struct {
	docs map[bson.ObjectID]*models.Playlist
}

func newFakePlaylists() *fakePlaylists {
	return &fakePlaylists{docs: map[bson.ObjectID]*models.Playlist{}}
}

func (f *fakePlaylists) Insert(_ context.Context, p *models.Playlist) error {
	p.ID = bson.NewObjectID()
	cp := *p
	cp.Videos = append([]bson.ObjectID{}, p.Videos...)
	f.docs[p.ID] = &cp
	return nil
}

func (f *fakePlaylists) FindByID(_ context.Context, id bson.ObjectID) (*models.Playlist, error) {
	p, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	cp.Videos = append([]bson.ObjectID{}, p.Videos...)
	return &cp, nil
}

func (f *fakePlaylists) ListByOwner(_ context.Context, owner bson.ObjectID) ([]models.PlaylistSummary, error) {
	out := []models.PlaylistSummary{}
	for _, p := range f.docs {
		if p.Owner == owner {
			out = append(out, models.PlaylistSummary{ID: p.ID, Name: p.Name, TotalVideos: int64(len(p.Videos))})
		}
	}
	return out, nil
}

func (f *fakePlaylists) UpdateDetails(_ context.Context, id bson.ObjectID, name, description string, now time.Time) error {
	p, ok := f.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Name, p.Description, p.UpdatedAt = name, description, now
	return nil
}

func (f *fakePlaylists) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := f.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

func (f *fakePlaylists) AddVideo(_ context.Context, id, video bson.ObjectID, now time.Time) (bool, error) {
	p, ok := f.docs[id]
	if !ok || p.Contains(video) {
		return false, nil
	}
	p.Videos = append(p.Videos, video)
	p.UpdatedAt = now
	return true, nil
}

func (f *fakePlaylists) RemoveVideo(_ context.Context, id, video bson.ObjectID, now time.Time) (bool, error) {
	p, ok := f.docs[id]
	if !ok || !p.Contains(video) {
		return false, nil
	}
	kept := []bson.ObjectID{}
	for _, v := range p.Videos {
		if v != video {
			kept = append(kept, v)
		}
	}
	p.Videos = kept
	p.UpdatedAt = now
	return true, nil
}

func (f *fakePlaylists) PullVideoEverywhere(ctx context.Context, video bson.ObjectID) error {
	for id := range f.docs {
		if _, err := f.RemoveVideo(ctx, id, video, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

// fakeSubscriptions

type fakeSubscriptions struct {
	docs []models.Subscription
}

func (f *fakeSubscriptions) Toggle(_ context.Context, subscriber, channel bson.ObjectID) (bool, error) {
	for i, s := range f.docs {
		if s.Subscriber == subscriber && s.Channel == channel {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return false, nil
		}
	}
	f.docs = append(f.docs, models.Subscription{ID: bson.NewObjectID(), Subscriber: subscriber, Channel: channel})
	return true, nil
}

func (f *fakeSubscriptions) CountSubscribers(_ context.Context, channel bson.ObjectID) (int64, error) {
	var n int64
	for _, s := range f.docs {
		if s.Channel == channel {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptions) Subscribers(_ context.Context, channel bson.ObjectID) ([]models.SubscriptionView, error) {
	out := []models.SubscriptionView{}
	for _, s := range f.docs {
		if s.Channel == channel {
			out = append(out, models.SubscriptionView{User: models.OwnerProfile{ID: s.Subscriber}})
		}
	}
	return out, nil
}

func (f *fakeSubscriptions) SubscribedChannels(_ context.Context, subscriber bson.ObjectID) ([]models.SubscriptionView, error) {
	out := []models.SubscriptionView{}
	for _, s := range f.docs {
		if s.Subscriber == subscriber {
			out = append(out, models.SubscriptionView{User: models.OwnerProfile{ID: s.Channel}})
		}
	}
	return out, nil
}

// fakeUsers

type fakeUsers struct {
	docs map[bson.ObjectID]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{docs: map[bson.ObjectID]*models.User{}}
}

func (f *fakeUsers) add(username string) bson.ObjectID {
	id := bson.NewObjectID()
	f.docs[id] = &models.User{ID: id, Username: username, Email: username + "@example.com", FullName: username}
	return id
}

func (f *fakeUsers) Insert(_ context.Context, u *models.User) error {
	for _, x := range f.docs {
		if x.Username == u.Username || x.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = bson.NewObjectID()
	cp := *u
	f.docs[u.ID] = &cp
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	u, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	cp.WatchHistory = append([]bson.ObjectID{}, u.WatchHistory...)
	return &cp, nil
}

func (f *fakeUsers) FindByLogin(_ context.Context, username, email string) (*models.User, error) {
	for _, u := range f.docs {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) Exists(_ context.Context, id bson.ObjectID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeUsers) get(id bson.ObjectID) (*models.User, error) {
	u, ok := f.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) SetRefreshToken(_ context.Context, id bson.ObjectID, token string) error {
	u, err := f.get(id)
	if err == nil {
		u.RefreshToken = token
	}
	return err
}

func (f *fakeUsers) SetPasswordHash(_ context.Context, id bson.ObjectID, hash string) error {
	u, err := f.get(id)
	if err == nil {
		u.PasswordHash = hash
	}
	return err
}

func (f *fakeUsers) UpdateAccount(_ context.Context, id bson.ObjectID, fullName, email string) error {
	for oid, x := range f.docs {
		if oid != id && x.Email == email {
			return repository.ErrDuplicate
		}
	}
	u, err := f.get(id)
	if err == nil {
		u.FullName, u.Email = fullName, email
	}
	return err
}

func (f *fakeUsers) SetAvatar(_ context.Context, id bson.ObjectID, a models.Asset) error {
	u, err := f.get(id)
	if err == nil {
		u.Avatar = a
	}
	return err
}

func (f *fakeUsers) SetCoverImage(_ context.Context, id bson.ObjectID, a models.Asset) error {
	u, err := f.get(id)
	if err == nil {
		u.CoverImage = &a
	}
	return err
}

func (f *fakeUsers) PushWatchHistory(_ context.Context, id, video bson.ObjectID) error {
	u, err := f.get(id)
	if err != nil {
		return err
	}
	h := []bson.ObjectID{video}
	for _, v := range u.WatchHistory {
		if v != video {
			h = append(h, v)
		}
	}
	u.WatchHistory = h
	return nil
}

func (f *fakeUsers) ChannelProfile(_ context.Context, username string, _ bson.ObjectID) (*models.ChannelProfile, error) {
	for _, u := range f.docs {
		if u.Username == username {
			return &models.ChannelProfile{ID: u.ID, Username: u.Username}, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) Profile(_ context.Context, id bson.ObjectID) (*models.OwnerProfile, error) {
	u, err := f.get(id)
	if err != nil {
		return nil, err
	}
	return &models.OwnerProfile{ID: u.ID, Username: u.Username, FullName: u.FullName}, nil
}

// fakeGateway records calls and fails for configured inputs.

type fakeGateway struct {
	failUpload map[string]bool
	failRemove map[string]bool
	uploaded   []string
	removed    []string
	// stored maps a public id to the bucket kind it was uploaded into.
	stored   map[string]media.Kind
	duration float64
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{failUpload: map[string]bool{}, failRemove: map[string]bool{}, stored: map[string]media.Kind{}}
}

func (g *fakeGateway) Upload(_ context.Context, path string, kind media.Kind) (*media.Upload, error) {
	if g.failUpload[path] {
		return nil, errors.New("upload failed")
	}
	g.uploaded = append(g.uploaded, path)
	id := "pid-" + path
	g.stored[id] = kind
	up := &media.Upload{Asset: models.Asset{URL: "http://cdn/" + id, PublicID: id}, Kind: kind}
	if kind == media.KindVideo {
		up.Duration = g.duration
	}
	return up, nil
}

// Remove behaves like an object store: removing from the wrong bucket
// succeeds but leaves the object in place.
func (g *fakeGateway) Remove(_ context.Context, publicID string, kind media.Kind) error {
	if publicID == "" {
		return nil
	}
	if g.failRemove[publicID] {
		return errors.New("remove failed")
	}
	if k, ok := g.stored[publicID]; ok && k == kind {
		delete(g.stored, publicID)
	}
	g.removed = append(g.removed, publicID)
	return nil
}
