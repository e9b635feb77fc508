package dto

type CreateTweetReq struct {
	Content string `json:"content" validate:"required,max=280"`
	ReplyTo string `json:"replyTo,omitempty"`
}

type UpdateTweetReq struct {
	Content string `json:"content" validate:"required,max=280"`
}
