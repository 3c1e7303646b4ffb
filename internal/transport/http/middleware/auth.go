package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"microblog/internal/domain"
	"microblog/internal/repository"
)

type contextKey string

const UserKey contextKey = "user"

// Auth requires a valid bearer token, resolves the token's subject to a user,
// and records the request as activity (last_seen). The loaded user rides on
// the request context.
func Auth(jwtSecret string, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := bearerSubject(r, jwtSecret)
			if !ok {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid token"}}`, http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil || user == nil {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Unknown user"}}`, http.StatusUnauthorized)
				return
			}

			// Activity is a side effect of processing the request, not of
			// authentication itself; failure here must not fail the request.
			_ = users.TouchLastSeen(r.Context(), user.ID, time.Now().UTC())

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AnonymousOnly rejects requests that already carry a valid session, mirroring
// the login/register pages redirecting authenticated users home.
func AnonymousOnly(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := bearerSubject(r, jwtSecret); ok {
				http.Error(w, `{"error":{"code":"ALREADY_AUTHENTICATED","message":"Log out first"}}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *domain.User {
	return ctx.Value(UserKey).(*domain.User)
}

func bearerSubject(r *http.Request, jwtSecret string) (int64, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return 0, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, _ := claims.GetSubject()
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}
