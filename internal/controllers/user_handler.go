package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/dto"
	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/internal/services"
)

const RefreshTokenCookie = "refreshToken"

type UserHandler struct {
	Svc           UserService
	TempDir       string
	SecureCookies bool
}

func NewUserHandler(svc UserService, tempDir string, secureCookies bool) *UserHandler {
	return &UserHandler{Svc: svc, TempDir: tempDir, SecureCookies: secureCookies}
}

func (h *UserHandler) setTokenCookies(c *fiber.Ctx, t *services.Tokens) {
	for name, value := range map[string]string{
		middleware.AccessTokenCookie: t.Access,
		RefreshTokenCookie:           t.Refresh,
	} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    value,
			Path:     "/",
			HTTPOnly: true,
			Secure:   h.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
}

func (h *UserHandler) clearTokenCookies(c *fiber.Ctx) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
			Secure:   h.SecureCookies,
		})
	}
}

// RegisterUser godoc
// @Summary      Register a user
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName    formData  string  true   "full name"
// @Param        email       formData  string  true   "email"
// @Param        username    formData  string  true   "username"
// @Param        password    formData  string  true   "password"
// @Param        avatar      formData  file    true   "avatar image"
// @Param        coverImage  formData  file    false  "cover image"
// @Success      201  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /users/register [post]
func (h *UserHandler) RegisterUser(c *fiber.Ctx) error {
	var req dto.RegisterReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}

	up := newUploads(h.TempDir)
	defer up.cleanup()
	avatar, err := up.save(c, "avatar")
	if err != nil {
		return Fail(c, err)
	}
	cover, err := up.save(c, "coverImage")
	if err != nil {
		return Fail(c, err)
	}

	u, err := h.Svc.Register(c.UserContext(), services.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		AvatarPath: avatar,
		CoverPath:  cover,
	})
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusCreated, u, "User registered successfully")
}

// LoginUser godoc
// @Summary      Log in with username or email
// @Description  Returns both tokens in the body and as httpOnly cookies.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginReq  true  "credentials"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /users/login [post]
func (h *UserHandler) LoginUser(c *fiber.Ctx) error {
	var req dto.LoginReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	u, tokens, err := h.Svc.Login(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return Fail(c, err)
	}
	h.setTokenCookies(c, tokens)
	return OK(c, fiber.StatusOK, dto.LoginResp{
		User:         u,
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}, "User logged in successfully")
}

// RefreshAccessToken godoc
// @Summary   Rotate tokens using the refresh token
// @Tags      users
// @Accept    json
// @Param     body  body  dto.RefreshReq  false  "refresh token, if not sent as cookie"
// @Success   200  {object}  dto.Response
// @Failure   401  {object}  dto.ErrorResponse
// @Router    /users/refresh-token [post]
func (h *UserHandler) RefreshAccessToken(c *fiber.Ctx) error {
	token := c.Cookies(RefreshTokenCookie)
	if token == "" && len(c.Body()) > 0 {
		var req dto.RefreshReq
		if err := c.BodyParser(&req); err == nil {
			token = strings.TrimSpace(req.RefreshToken)
		}
	}
	if token == "" {
		return Fail(c, apperror.Unauthorized("unauthorized request"))
	}
	tokens, err := h.Svc.Refresh(c.UserContext(), token)
	if err != nil {
		return Fail(c, err)
	}
	h.setTokenCookies(c, tokens)
	return OK(c, fiber.StatusOK, dto.TokensResp{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}, "Access token refreshed")
}

// LogoutUser godoc
// @Summary   Log out
// @Tags      users
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /users/logout [post]
func (h *UserHandler) LogoutUser(c *fiber.Ctx) error {
	if err := h.Svc.Logout(c.UserContext(), viewer(c)); err != nil {
		return Fail(c, err)
	}
	h.clearTokenCookies(c)
	return OK(c, fiber.StatusOK, nil, "User logged out")
}

// ChangePassword godoc
// @Summary   Change the caller's password
// @Tags      users
// @Security  BearerAuth
// @Param     body  body  dto.ChangePasswordReq  true  "old and new password"
// @Success   200  {object}  dto.Response
// @Failure   400  {object}  dto.ErrorResponse
// @Router    /users/change-password [post]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	if err := h.Svc.ChangePassword(c.UserContext(), viewer(c), req.OldPassword, req.NewPassword); err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, nil, "Password changed successfully")
}

// GetCurrentUser godoc
// @Summary   The authenticated user
// @Tags      users
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /users/current-user [get]
func (h *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	u, err := h.Svc.Current(c.UserContext(), viewer(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, u, "Current user fetched successfully")
}

// UpdateAccountDetails godoc
// @Summary   Update full name and email
// @Tags      users
// @Security  BearerAuth
// @Param     body  body  dto.UpdateAccountReq  true  "account details"
// @Success   200  {object}  dto.Response
// @Failure   409  {object}  dto.ErrorResponse
// @Router    /users/update-account [patch]
func (h *UserHandler) UpdateAccountDetails(c *fiber.Ctx) error {
	var req dto.UpdateAccountReq
	if err := bind(c, &req); err != nil {
		return Fail(c, err)
	}
	u, err := h.Svc.UpdateAccount(c.UserContext(), viewer(c), req.FullName, req.Email)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, u, "Account details updated successfully")
}

func (h *UserHandler) replaceImage(c *fiber.Ctx, field string,
	update func(path string) (any, error), msg string) error {
	up := newUploads(h.TempDir)
	defer up.cleanup()
	path, err := up.save(c, field)
	if err != nil {
		return Fail(c, err)
	}
	if path == "" {
		return Fail(c, apperror.Validationf("%s file is missing", field))
	}
	u, err := update(path)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, u, msg)
}

// UpdateUserAvatar godoc
// @Summary   Replace the caller's avatar
// @Tags      users
// @Accept    multipart/form-data
// @Security  BearerAuth
// @Param     avatar  formData  file  true  "avatar image"
// @Success   200  {object}  dto.Response
// @Router    /users/avatar [patch]
func (h *UserHandler) UpdateUserAvatar(c *fiber.Ctx) error {
	return h.replaceImage(c, "avatar", func(path string) (any, error) {
		return h.Svc.UpdateAvatar(c.UserContext(), viewer(c), path)
	}, "Avatar updated successfully")
}

// UpdateUserCoverImage godoc
// @Summary   Replace the caller's cover image
// @Tags      users
// @Accept    multipart/form-data
// @Security  BearerAuth
// @Param     coverImage  formData  file  true  "cover image"
// @Success   200  {object}  dto.Response
// @Router    /users/cover-image [patch]
func (h *UserHandler) UpdateUserCoverImage(c *fiber.Ctx) error {
	return h.replaceImage(c, "coverImage", func(path string) (any, error) {
		return h.Svc.UpdateCoverImage(c.UserContext(), viewer(c), path)
	}, "Cover image updated successfully")
}

// GetUserChannelProfile godoc
// @Summary  Public channel profile
// @Tags     users
// @Param    username  path  string  true  "username"
// @Success  200  {object}  dto.Response
// @Failure  404  {object}  dto.ErrorResponse
// @Router   /users/c/{username} [get]
func (h *UserHandler) GetUserChannelProfile(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return Fail(c, apperror.Validation("username is missing"))
	}
	p, err := h.Svc.ChannelProfile(c.UserContext(), viewer(c), username)
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, p, "User channel fetched successfully")
}

// GetWatchHistory godoc
// @Summary   The caller's watch history, most recent first
// @Tags      users
// @Security  BearerAuth
// @Success   200  {object}  dto.Response
// @Router    /users/history [get]
func (h *UserHandler) GetWatchHistory(c *fiber.Ctx) error {
	videos, err := h.Svc.WatchHistory(c.UserContext(), viewer(c))
	if err != nil {
		return Fail(c, err)
	}
	return OK(c, fiber.StatusOK, videos, "Watch history fetched successfully")
}
