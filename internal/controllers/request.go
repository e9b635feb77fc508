package controllers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/middleware"
	"github.com/Furqankhan76/Vidtube/utils"
)

var validate = validator.New()

// bind parses the body (JSON or form) into dst and runs its validate tags.
func bind(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperror.Validation("invalid request body")
	}
	return check(dst)
}

func check(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation("invalid request body")
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details = append(details, fe.Field()+" failed on "+rule)
	}
	return apperror.Validation("validation failed", details...)
}

func pathID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	return utils.ParseID(name, c.Params(name))
}

// viewer is the authenticated caller, or NilObjectID for anonymous requests.
func viewer(c *fiber.Ctx) bson.ObjectID {
	uid, _ := middleware.UIDObjectID(c)
	return uid
}

// uploads saves multipart files into a temp dir. The media gateway deletes
// what it uploads; cleanup removes whatever was left behind.
type uploads struct {
	dir   string
	paths []string
}

func newUploads(dir string) *uploads {
	return &uploads{dir: dir}
}

// save stores the named form file and returns its path, or "" if the request
// has no such file.
func (u *uploads) save(c *fiber.Ctx, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil || fh.Size == 0 {
		return "", nil
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", apperror.Internal("failed to prepare upload directory", err)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(u.dir, uuid.NewString()+ext)
	if err := c.SaveFile(fh, path); err != nil {
		return "", apperror.Internal("failed to store upload", err)
	}
	u.paths = append(u.paths, path)
	return path, nil
}

func (u *uploads) cleanup() {
	for _, p := range u.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.Log.Warn().Err(err).Str("path", p).Msg("remove leftover upload")
		}
	}
}

var errInvalidQuery = apperror.Validation("invalid query parameters")
