package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/ctxdata"
	"schoolhub/pkg/logging"
)

type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (uuid.UUID, model.Role, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func NewAuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := BearerToken(r)
			if !ok {
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeError(w, http.StatusUnauthorized)
				return
			}

			userId, role, err := validator.ValidateAccessToken(ctx, token)
			if err != nil {
				if errors.Is(err, errdefs.ErrAuthentication) {
					if logger, ok := logging.GetFromContext(ctx); ok {
						logger.Info(ctx, "invalid access token", zap.String("path", r.URL.Path))
					}
					writeError(w, http.StatusUnauthorized)
					return
				}
				if logger, ok := logging.GetFromContext(ctx); ok {
					logger.Error(
						ctx, "error while validating access token",
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Error(err),
					)
				}
				writeError(w, http.StatusInternalServerError)
				return
			}

			ctx = ctxdata.WithActor(ctx, ctxdata.Actor{UserID: userId, Role: role.String()})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles must run after the auth middleware.
func RequireRoles(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ctxdata.GetActor(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized)
				return
			}
			if !slices.Contains(roles, model.Role(actor.Role)) {
				if logger, ok := logging.GetFromContext(r.Context()); ok {
					logger.Info(r.Context(), "role not allowed",
						zap.String("path", r.URL.Path),
						zap.String("role", actor.Role),
					)
				}
				writeError(w, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp, _ := json.Marshal(map[string]string{"error": http.StatusText(statusCode)})
	w.Write(resp)
}
