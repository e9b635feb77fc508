package pipeline

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
)

// sortFields maps the public sortBy values to stored field names.
var sortFields = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"views":     "views",
	"duration":  "duration",
	"title":     "title",
}

const DefaultSortBy = "createdAt"

type ListVideosParams struct {
	Query     string
	OwnerID   *bson.ObjectID
	SortField string
	// SortDir is 1 for ascending, -1 for descending.
	SortDir int
	Pagination
}

// ParseListVideosParams validates raw request parameters. The owner filter
// must be a well-formed id and sortBy must name a sortable field.
func ParseListVideosParams(query, userID, sortBy, sortType string, page, limit int64) (ListVideosParams, error) {
	p := ListVideosParams{
		Query:      strings.TrimSpace(query),
		SortDir:    -1,
		Pagination: NewPagination(page, limit),
	}

	if userID = strings.TrimSpace(userID); userID != "" {
		oid, err := bson.ObjectIDFromHex(userID)
		if err != nil {
			return p, apperror.Validation("invalid userId")
		}
		p.OwnerID = &oid
	}

	if sortBy = strings.TrimSpace(sortBy); sortBy == "" {
		sortBy = DefaultSortBy
	}
	field, ok := sortFields[sortBy]
	if !ok {
		return p, apperror.Validationf("cannot sort by %q", sortBy)
	}
	p.SortField = field

	if strings.EqualFold(strings.TrimSpace(sortType), "asc") {
		p.SortDir = 1
	}
	return p, nil
}

// BuildVideoListPipeline composes, in order: text filter, owner filter,
// sort, owner join, card projection, pagination.
func BuildVideoListPipeline(p ListVideosParams) mongo.Pipeline {
	var pipe mongo.Pipeline

	if p.Query != "" {
		pattern := bson.Regex{Pattern: regexp.QuoteMeta(p.Query), Options: "i"}
		pipe = append(pipe, match(bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: pattern}},
			bson.D{{Key: "description", Value: pattern}},
		}}}))
	}

	if p.OwnerID != nil {
		pipe = append(pipe, match(bson.D{{Key: "owner", Value: *p.OwnerID}}))
	}

	dir := p.SortDir
	if dir != 1 {
		dir = -1
	}
	pipe = append(pipe, bson.D{{Key: "$sort", Value: bson.D{
		{Key: p.SortField, Value: dir},
		{Key: "_id", Value: dir},
	}}})

	pipe = append(pipe, userLookup("owner", "owner_doc")...)
	pipe = append(pipe, bson.D{{Key: "$project", Value: videoCardFields("", "owner_doc")}})
	pipe = append(pipe, facetStage(p.Pagination))
	return pipe
}

// videoCardFields projects a VideoCard from the video found under prefix
// ("" for the root document) and the owner joined under ownerPath.
func videoCardFields(prefix, ownerPath string) bson.D {
	ref := func(f string) string { return "$" + prefix + f }
	return bson.D{
		{Key: "_id", Value: ref("_id")},
		{Key: "title", Value: ref("title")},
		{Key: "description", Value: ref("description")},
		{Key: "thumbnail", Value: ref("thumbnail.url")},
		{Key: "video_file", Value: ref("video_file.url")},
		{Key: "duration", Value: ref("duration")},
		{Key: "created_at", Value: ref("created_at")},
		{Key: "owner", Value: profileFields(ownerPath)},
	}
}

// VideoCardsByIDs loads listing cards for the given ids in unspecified
// order; callers reorder when the id order matters.
func VideoCardsByIDs(ids []bson.ObjectID) mongo.Pipeline {
	return concat(
		mongo.Pipeline{match(bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}})},
		userLookup("owner", "owner_doc"),
		mongo.Pipeline{{{Key: "$project", Value: videoCardFields("", "owner_doc")}}},
	)
}

// LikedVideos lists the videos a user has liked, most recent like first.
func LikedVideos(user bson.ObjectID) mongo.Pipeline {
	return concat(
		mongo.Pipeline{
			match(bson.D{
				{Key: "liked_by", Value: user},
				{Key: "video", Value: bson.D{{Key: "$exists", Value: true}}},
			}),
			{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
			{{Key: "$lookup", Value: bson.D{
				{Key: "from", Value: videosCollection},
				{Key: "localField", Value: "video"},
				{Key: "foreignField", Value: "_id"},
				{Key: "as", Value: "video_doc"},
			}}},
			{{Key: "$unwind", Value: "$video_doc"}},
		},
		userLookup("video_doc.owner", "owner_doc"),
		mongo.Pipeline{{{Key: "$project", Value: videoCardFields("video_doc.", "owner_doc")}}},
	)
}
