package dto

// PublishVideoReq is the text part of the multipart publish form; the
// videoFile and thumbnail parts are read separately.
type PublishVideoReq struct {
	Title       string `form:"title"       validate:"required,min=3,max=100"`
	Description string `form:"description" validate:"required,min=10,max=5000"`
}

type UpdateVideoReq struct {
	Title       *string `form:"title"       json:"title"       validate:"omitempty,min=3,max=100"`
	Description *string `form:"description" json:"description" validate:"omitempty,min=10,max=5000"`
}

type ListVideosQuery struct {
	Page     int64  `query:"page"`
	Limit    int64  `query:"limit"`
	Query    string `query:"query"`
	SortBy   string `query:"sortBy"`
	SortType string `query:"sortType"`
	UserID   string `query:"userId"`
}
