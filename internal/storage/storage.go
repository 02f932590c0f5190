package storage

import "context"

// BlobStore — хранилище бинарных ассетов продуктов (2D изображения и
// 3D модели). Save возвращает публичный URL сохранённого объекта.
type BlobStore interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
}
