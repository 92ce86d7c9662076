package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName — имя cookie с JWT сессии.
const CookieName = "auth_token"

const tokenTTL = 30 * 24 * time.Hour

type ctxKey struct{}

// Claims — полезная нагрузка токена сессии.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// CookieOption настраивает выдаваемую cookie.
type CookieOption func(*http.Cookie)

// Secure ставит флаг Secure (для HTTPS).
func Secure(on bool) CookieOption {
	return func(c *http.Cookie) { c.Secure = on }
}

// SetLoginCookie подписывает токен для userID и кладёт его в cookie.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string, opts ...CookieOption) error {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return err
	}
	c := &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  now.Add(tokenTTL),
	}
	for _, o := range opts {
		o(c)
	}
	http.SetCookie(w, c)
	return nil
}

// ClearLoginCookie удаляет cookie сессии.
func ClearLoginCookie(w http.ResponseWriter, opts ...CookieOption) {
	c := &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
	for _, o := range opts {
		o(c)
	}
	http.SetCookie(w, c)
}

// ParseToken проверяет подпись и срок действия токена.
func ParseToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// WithAuth кладёт user_id в контекст, если cookie содержит валидный токен.
// Анонимные запросы пропускаются дальше: решение об отказе принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := ParseToken(c.Value, secret)
			if err != nil {
				if log != nil {
					log.Debugw("auth: invalid token", "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKey{}, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext возвращает id пользователя текущей сессии.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	return id, ok && id != 0
}
