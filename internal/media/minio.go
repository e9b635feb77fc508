package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"github.com/Furqankhan76/Vidtube/internal/logger"
	"github.com/Furqankhan76/Vidtube/internal/metrics"
	"github.com/Furqankhan76/Vidtube/internal/models"
)

// objectStore is the subset of *minio.Client the gateway needs.
type objectStore interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)
	MakeBucket(ctx context.Context, bucket string, opts minio.MakeBucketOptions) error
	FPutObject(ctx context.Context, bucket, object, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucket, object string, opts minio.RemoveObjectOptions) error
}

type MinioConfig struct {
	Endpoint    string
	AccessKey   string
	SecretKey   string
	UseSSL      bool
	VideoBucket string
	ImageBucket string
	// PublicURL prefixes "<bucket>/<object>" to form asset URLs.
	PublicURL string
}

type MinioGateway struct {
	store  objectStore
	cfg    MinioConfig
	probe  Prober
	newKey func() string
}

func NewMinioGateway(cfg MinioConfig) (*MinioGateway, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "create minio client")
	}
	return newGateway(client, cfg, ProbeDuration), nil
}

func newGateway(store objectStore, cfg MinioConfig, probe Prober) *MinioGateway {
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")
	return &MinioGateway{store: store, cfg: cfg, probe: probe, newKey: uuid.NewString}
}

// EnsureBuckets creates the video and image buckets when missing.
func (g *MinioGateway) EnsureBuckets(ctx context.Context) error {
	for _, b := range []string{g.cfg.VideoBucket, g.cfg.ImageBucket} {
		ok, err := g.store.BucketExists(ctx, b)
		if err != nil {
			return errors.WithMessagef(err, "check bucket %s", b)
		}
		if ok {
			continue
		}
		if err := g.store.MakeBucket(ctx, b, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessagef(err, "create bucket %s", b)
		}
		logger.Log.Info().Str("bucket", b).Msg("created bucket")
	}
	return nil
}

func (g *MinioGateway) bucket(k Kind) string {
	if k == KindVideo {
		return g.cfg.VideoBucket
	}
	return g.cfg.ImageBucket
}

func (g *MinioGateway) Upload(ctx context.Context, localPath string, kind Kind) (up *Upload, err error) {
	defer func() {
		if rmErr := os.Remove(localPath); rmErr != nil && !os.IsNotExist(rmErr) {
			logger.Log.Warn().Err(rmErr).Str("path", localPath).Msg("remove temp file")
		}
		metrics.MediaOps.WithLabelValues("upload", kind.String(), metrics.Result(err)).Inc()
	}()

	if localPath == "" {
		return nil, errors.New("no file to upload")
	}

	up = &Upload{Kind: kind}
	if kind == KindVideo && g.probe != nil {
		d, perr := g.probe(localPath)
		if perr != nil {
			logger.Log.Warn().Err(perr).Str("path", localPath).Msg("probe duration")
		} else {
			up.Duration = d
		}
	}

	key := g.newKey() + strings.ToLower(filepath.Ext(localPath))
	bucket := g.bucket(kind)
	if _, err = g.store.FPutObject(ctx, bucket, key, localPath, minio.PutObjectOptions{ContentType: contentType(localPath)}); err != nil {
		return nil, errors.WithMessagef(err, "upload to %s", bucket)
	}

	up.Asset = models.Asset{URL: g.cfg.PublicURL + "/" + bucket + "/" + key, PublicID: key}
	return up, nil
}

func (g *MinioGateway) Remove(ctx context.Context, publicID string, kind Kind) (err error) {
	if publicID == "" {
		return nil
	}
	defer func() {
		metrics.MediaOps.WithLabelValues("remove", kind.String(), metrics.Result(err)).Inc()
	}()

	if err = g.store.RemoveObject(ctx, g.bucket(kind), publicID, minio.RemoveObjectOptions{}); err != nil {
		return errors.WithMessagef(err, "remove %s", publicID)
	}
	return nil
}
