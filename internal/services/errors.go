package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Furqankhan76/Vidtube/internal/apperror"
	"github.com/Furqankhan76/Vidtube/internal/media"
	"github.com/Furqankhan76/Vidtube/internal/repository"
)

// storeErr classifies a repository error: missing documents become
// not-found with msg, everything else is internal.
func storeErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return apperror.NotFound(msg)
	}
	return internal(err, msg)
}

// internal marks err as an internal failure unless it is already classified.
func internal(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ae *apperror.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperror.Internal(msg, err)
}

// textField trims s and checks its length in characters.
func textField(name, s string, min, max int) (string, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	switch {
	case n == 0 && min > 0:
		return "", apperror.Validationf("%s is required", name)
	case n < min:
		return "", apperror.Validationf("%s must be at least %d characters", name, min)
	case n > max:
		return "", apperror.Validationf("%s must be at most %d characters", name, max)
	}
	return s, nil
}

func utcNow() time.Time { return time.Now().UTC() }

// mediaFile rejects an upload whose extension is not of the wanted kind, so
// an asset always lives in the bucket its later removal targets.
func mediaFile(field, path string, want media.Kind) error {
	if kind, ok := media.Detect(path); !ok || kind != want {
		return apperror.Validationf("%s must be a %s file", field, want)
	}
	return nil
}
