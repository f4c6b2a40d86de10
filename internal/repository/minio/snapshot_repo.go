package minio

import (
	"bytes"
	"context"
	"io"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// SnapshotRepo хранит бинарные снапшоты embedding-индекса в MinIO.
type SnapshotRepo struct {
	mc  *minio.Client
	cfg *cfg.IndexCfg

	bucketName string
}

func NewSnapshotRepo(mc *minio.Client, cfg *cfg.IndexCfg, bucketName string) *SnapshotRepo {
	return &SnapshotRepo{
		mc:         mc,
		cfg:        cfg,
		bucketName: bucketName,
	}
}

// Save перезаписывает снапшот индекса целиком.
func (s *SnapshotRepo) Save(ctx context.Context, data []byte) error {
	_, err := s.mc.PutObject(ctx, s.bucketName, s.cfg.SnapshotKey,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/octet-stream",
		})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Load возвращает последний сохраненный снапшот индекса.
// Если снапшот еще не сохранялся, возвращает e.ErrSnapshotNotFound.
func (s *SnapshotRepo) Load(ctx context.Context) ([]byte, error) {
	object, err := s.mc.GetObject(ctx, s.bucketName, s.cfg.SnapshotKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		// GetObject ленивый, отсутствие объекта проявляется при чтении
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, e.ErrSnapshotNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}
