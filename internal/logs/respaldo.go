package logs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/geotrack/geotrack-api/pkg/logger"
)

// subidor is the slice of the minio client Subir needs. Tests substitute it.
type subidor interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader,
		objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// Respaldo uploads periodic JSON snapshots of the audit log to an object
// bucket. Entries are never deleted from the primary store; the log stays
// append-only.
type Respaldo struct {
	client subidor
	bucket string
	repo   Repository
}

// NewRespaldo creates the backup client and ensures the bucket exists.
func NewRespaldo(endpoint, accessKey, secretKey, bucket string, useSSL bool, repo Repository) (*Respaldo, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("respaldo: endpoint no configurado")
	}
	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("respaldo: %w", err)
	}
	r := &Respaldo{client: mc, bucket: bucket, repo: repo}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
		exist, xerr := mc.BucketExists(ctx, bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("respaldo bucket: %w", err)
		}
	}
	return r, nil
}

// Subir uploads every entry recorded since the given instant and returns the
// object key.
func (r *Respaldo) Subir(ctx context.Context, desde time.Time) (string, error) {
	entradas, err := r.repo.ObtenerDesde(ctx, desde)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(entradas)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("logs/%s.json", time.Now().UTC().Format("20060102T150405"))
	_, err = r.client.PutObject(ctx, r.bucket, key, bytes.NewReader(b), int64(len(b)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Ejecutar runs the backup loop until the context is cancelled. Failures are
// logged and the loop keeps going.
func (r *Respaldo) Ejecutar(ctx context.Context, intervalo time.Duration) {
	ticker := time.NewTicker(intervalo)
	defer ticker.Stop()
	ultimo := time.Now().UTC().Add(-intervalo)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			key, err := r.Subir(ctx, ultimo)
			if err != nil {
				logger.Errorf("respaldo de logs fallido: %v", err)
				continue
			}
			ultimo = time.Now().UTC()
			logger.Infof("respaldo de logs subido: %s", key)
		}
	}
}
