package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func signedToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId":    "u1",
		"userEmail": "admin@example.com",
		"role":      role,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	assert.NoError(t, err)
	return token
}

func TestDecode(t *testing.T) {
	t.Run("role is lower-cased", func(t *testing.T) {
		sess := Decode(signedToken(t, "superAdmin"))
		if assert.NotNil(t, sess) {
			assert.Equal(t, "superadmin", sess.Role)
			assert.Equal(t, "u1", sess.UserID)
			assert.Equal(t, "admin@example.com", sess.Email)
		}
	})

	t.Run("malformed token decodes to nil", func(t *testing.T) {
		assert.Nil(t, Decode("not-a-jwt"))
		assert.Nil(t, Decode(""))
	})

	t.Run("decode failure is logged, not thrown", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		SetLogger(zap.New(core).Sugar())
		t.Cleanup(func() { sugar = zap.NewNop().Sugar() })

		assert.Nil(t, Decode("not-a-jwt"))

		entries := logs.FilterMessageSnippet("decode").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zap.DebugLevel, entries[0].Level)
		}
	})
}

func TestStore_RoundTrip(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "token")}

	// nothing stored yet
	assert.False(t, store.IsLoggedIn())

	assert.NoError(t, store.Save(signedToken(t, "admin")))
	assert.True(t, store.IsLoggedIn())

	sess := store.Current()
	if assert.NotNil(t, sess) {
		assert.Equal(t, "admin", sess.Role)
	}

	// clear is idempotent
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
	assert.False(t, store.IsLoggedIn())
}

func TestStore_GarbageTokenMeansLoggedOut(t *testing.T) {
	store := Store{Path: filepath.Join(t.TempDir(), "token")}
	assert.NoError(t, store.Save("garbage"))
	assert.Nil(t, store.Current())
	assert.False(t, store.IsLoggedIn())
}
