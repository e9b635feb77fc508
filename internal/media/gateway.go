// Package media stores uploaded files in the object store and removes them
// again. Local temporary files handed to Upload are always deleted.
package media

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/Furqankhan76/Vidtube/internal/models"
)

type Kind int

const (
	KindImage Kind = iota
	KindVideo
)

func (k Kind) String() string {
	if k == KindVideo {
		return "video"
	}
	return "image"
}

// Upload is a stored asset. Duration is set for videos when it could be
// probed and is 0 otherwise.
type Upload struct {
	models.Asset
	Kind     Kind
	Duration float64
}

type Gateway interface {
	// Upload stores localPath in the bucket for kind. Callers check the file
	// with Detect first; Remove must later be called with the same kind.
	Upload(ctx context.Context, localPath string, kind Kind) (*Upload, error)
	// Remove deletes an asset. An empty publicID is a no-op.
	Remove(ctx context.Context, publicID string, kind Kind) error
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".mkv": true, ".webm": true, ".avi": true, ".m4v": true, ".mpeg": true,
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true, ".avif": true,
}

// Detect classifies a file by extension. ok is false for anything that is
// neither a known video nor a known image type, including files without an
// extension.
func Detect(path string) (kind Kind, ok bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return KindImage, false
	}
	ct := mime.TypeByExtension(ext)
	switch {
	case videoExts[ext] || strings.HasPrefix(ct, "video/"):
		return KindVideo, true
	case imageExts[ext] || strings.HasPrefix(ct, "image/"):
		return KindImage, true
	}
	return KindImage, false
}

func contentType(path string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
