package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "cache.sqlite"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.Get("product", "page=1")
	assert.False(t, ok)

	s.Set("product", "page=1", []byte(`[{"id":"p1"}]`))
	payload, ok := s.Get("product", "page=1")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), payload)

	// replace keeps the key unique
	s.Set("product", "page=1", []byte(`[]`))
	payload, _ = s.Get("product", "page=1")
	assert.Equal(t, []byte(`[]`), payload)
}

func TestStore_TTL(t *testing.T) {
	s := newTestStore(t)
	s.ttl = time.Nanosecond

	s.Set("product", "page=1", []byte(`[]`))
	time.Sleep(2 * time.Second)

	_, ok := s.Get("product", "page=1")
	assert.False(t, ok)
}

func TestStore_Invalidate(t *testing.T) {
	s := newTestStore(t)

	s.Set("product", "page=1", []byte(`a`))
	s.Set("product", "page=2", []byte(`b`))
	s.Set("disclaimer", "page=1", []byte(`c`))

	s.Invalidate("product")

	_, ok := s.Get("product", "page=1")
	assert.False(t, ok)
	_, ok = s.Get("product", "page=2")
	assert.False(t, ok)
	_, ok = s.Get("disclaimer", "page=1")
	assert.True(t, ok)
}

func TestStore_NilSafe(t *testing.T) {
	var s *Store

	_, ok := s.Get("product", "k")
	assert.False(t, ok)
	s.Set("product", "k", []byte(`x`))
	s.Invalidate("product")
	assert.NoError(t, s.Close())
}
