package dto

type CreateCommentReq struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type UpdateCommentReq struct {
	Content string `json:"content" validate:"required,max=1000"`
}
