package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"SiteModels/internal/model"
)

type contextKey string

const claimsContextKey contextKey = "auth_claims"

// RefreshCookieName — имя cookie с refresh‑токеном.
const RefreshCookieName = "refreshToken"

// Claims — полезная нагрузка access‑токена.
// Имена полей повторяют контракт API (userId/userEmail/role).
type Claims struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// BuildToken подписывает токен для пользователя с заданным временем жизни.
// Используется и для access‑, и для refresh‑токена.
func BuildToken(u *model.User, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    u.ID,
		UserEmail: u.Email,
		Role:      u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken валидирует подпись и срок действия токена.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// SetRefreshCookie кладёт refresh‑токен в httpOnly cookie.
func SetRefreshCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// WithAuth извлекает Bearer‑токен, валидирует его и кладёт claims в контекст.
// Отсутствующий или невалидный токен не является ошибкой: запрос продолжается
// анонимным, решение принимают RequireAuth/RequireRole на конкретных роутах.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := ParseToken(raw, secret)
			if err != nil {
				sugar.Debugw("auth: invalid token", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext возвращает claims, установленные WithAuth.
func GetClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsContextKey).(*Claims)
	return c, ok
}

// deny пишет отказ в формате конверта ошибки API.
func deny(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"message":"` + message + `","errorSources":[]}`))
}

// RequireAuth пропускает только аутентифицированные запросы.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaimsFromContext(r.Context()); !ok {
			deny(w, http.StatusUnauthorized, "You are not authorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin пропускает только привилегированные роли (admin/superAdmin).
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			deny(w, http.StatusUnauthorized, "You are not authorized")
			return
		}
		if !model.IsPrivileged(claims.Role) {
			deny(w, http.StatusForbidden, "Access denied")
			return
		}
		next.ServeHTTP(w, r)
	})
}
