package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FSStore — BlobStore на локальном диске. Используется в разработке и
// тестах, когда S3 не сконфигурирован; файлы раздаются сервером по
// baseURL/<key>.
type FSStore struct {
	dir     string
	baseURL string
}

var _ BlobStore = (*FSStore)(nil)

// NewFSStore создаёт каталог хранения, если его ещё нет.
func NewFSStore(dir, baseURL string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save пишет файл на диск. Ключ может содержать подкаталоги.
func (s *FSStore) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	_ = contentType
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/" + escapeKey(key), nil
}
