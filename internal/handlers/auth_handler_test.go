package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"SiteModels/internal/middleware"
	"SiteModels/internal/model"
)

func loginBody(t *testing.T, email, password string) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(map[string]string{"email": email, "password": password})
	assert.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestAuth_Login(t *testing.T) {
	env := newTestEnv(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	user := &model.User{
		ID:       "u1",
		Email:    "admin@example.com",
		Password: string(hash),
		Role:     model.RoleAdmin,
		Status:   model.StatusActive,
	}

	t.Run("ok", func(t *testing.T) {
		env.users.ExpectedCalls = nil
		env.users.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(user, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", loginBody(t, "admin@example.com", "secret1"))
		rr := do(env, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				AccessToken string `json:"accessToken"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Data.AccessToken)

		// refresh уходит httpOnly-кукой
		var refresh *http.Cookie
		for _, c := range rr.Result().Cookies() {
			if c.Name == middleware.RefreshCookieName {
				refresh = c
			}
		}
		if assert.NotNil(t, refresh) {
			assert.True(t, refresh.HttpOnly)
			assert.NotEmpty(t, refresh.Value)
		}
	})

	t.Run("неверный пароль — 401 с конвертом ошибки", func(t *testing.T) {
		env.users.ExpectedCalls = nil
		env.users.On("GetUserByEmail", mock.Anything, "admin@example.com").Return(user, nil).Once()

		rr := do(env, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", loginBody(t, "admin@example.com", "wrong")))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp struct {
			Success      bool   `json:"success"`
			Message      string `json:"message"`
			ErrorSources []any  `json:"errorSources"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
		assert.NotNil(t, resp.ErrorSources)
	})

	t.Run("неизвестный email — 401", func(t *testing.T) {
		env.users.ExpectedCalls = nil
		env.users.On("GetUserByEmail", mock.Anything, "ghost@example.com").Return((*model.User)(nil), gorm.ErrRecordNotFound).Once()

		rr := do(env, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", loginBody(t, "ghost@example.com", "x")))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuth_RefreshToken(t *testing.T) {
	env := newTestEnv(t)
	user := &model.User{ID: "u1", Email: "admin@example.com", Role: model.RoleAdmin, Status: model.StatusActive}

	t.Run("без куки — 401", func(t *testing.T) {
		rr := do(env, httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("с валидной кукой — новый access", func(t *testing.T) {
		env.users.ExpectedCalls = nil
		env.users.On("GetUserByID", mock.Anything, "u1").Return(user, nil).Once()

		refresh, err := middleware.BuildToken(user, env.cfg.AuthSecret, 24*time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token", nil)
		req.AddCookie(&http.Cookie{Name: middleware.RefreshCookieName, Value: refresh})
		rr := do(env, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Data struct {
				AccessToken string `json:"accessToken"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.AccessToken)
	})
}

func TestAuth_ChangePassword_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewBufferString(`{"oldPassword":"a","newPassword":"bcdef"}`)
	rr := do(env, httptest.NewRequest(http.MethodPost, "/api/v1/auth/change-password", body))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_ChangePassword_TooShort(t *testing.T) {
	env := newTestEnv(t)

	body := bytes.NewBufferString(`{"oldPassword":"a","newPassword":"bc"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/change-password", body)
	addAuth(t, req, model.RoleBuyer, env.cfg.AuthSecret)
	rr := do(env, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		ErrorSources []struct {
			Path string `json:"path"`
		} `json:"errorSources"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	if assert.Len(t, resp.ErrorSources, 1) {
		assert.Equal(t, "newPassword", resp.ErrorSources[0].Path)
	}
}
