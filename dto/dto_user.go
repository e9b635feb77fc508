package dto

import "github.com/Furqankhan76/Vidtube/internal/models"

// RegisterReq is the text part of the multipart registration form.
type RegisterReq struct {
	FullName string `form:"fullName" validate:"required"`
	Email    string `form:"email"    validate:"required,email"`
	Username string `form:"username" validate:"required,alphanum,min=3,max=30"`
	Password string `form:"password" validate:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

type RefreshReq struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdateAccountReq struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type LoginResp struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokensResp struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
