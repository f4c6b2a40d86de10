package minio

import (
	"context"
	"io"
	"strings"

	"github.com/DRSN-tech/visual-search/internal/cfg"
	"github.com/DRSN-tech/visual-search/internal/usecase"
	"github.com/DRSN-tech/visual-search/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// CatalogSourceRepo перечисляет изображения каталога в MinIO для пересборки индекса.
// Ключи объектов имеют вид <prefix><артикул>/<имя файла>.
type CatalogSourceRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewCatalogSourceRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *CatalogSourceRepo {
	return &CatalogSourceRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// List возвращает по одному изображению на артикул, первое в лексикографическом
// порядке ключей. Объекты вне схемы <prefix><артикул>/... пропускаются.
func (c *CatalogSourceRepo) List(ctx context.Context) ([]usecase.CatalogImage, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    c.cfg.CatalogPrefix,
		Recursive: true,
	}

	seen := make(map[string]struct{})
	images := make([]usecase.CatalogImage, 0)

	for object := range c.mc.ListObjects(ctx, c.cfg.BucketName, opts) {
		if object.Err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), object.Err)
		}

		code := c.codeFromKey(object.Key)
		if code == "" {
			continue
		}

		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}

		images = append(images, usecase.NewCatalogImage(code, object.Key))
	}

	return images, nil
}

// Get возвращает байты объекта каталога.
func (c *CatalogSourceRepo) Get(ctx context.Context, objectKey string) ([]byte, error) {
	object, err := c.mc.GetObject(ctx, c.cfg.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (c *CatalogSourceRepo) codeFromKey(key string) string {
	rest, ok := strings.CutPrefix(key, c.cfg.CatalogPrefix)
	if !ok {
		return ""
	}

	code, _, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}

	return code
}
