package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"schoolhub/internal/handler/middleware"
	"schoolhub/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.User, error)
	Login(ctx context.Context, input *model.LoginInput) (*model.LoginResult, error)
	RefreshToken(ctx context.Context, input *model.RefreshTokenInput) (*model.TokenPair, error)
	UpdateUser(ctx context.Context, actorId uuid.UUID, input *model.UpdateUserInput) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error)
}

type AuthHandler struct {
	s AuthService
}

func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{s: s}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", Handle(h.login, true, http.StatusOK))
		r.Post("/register", Handle(h.register, true, http.StatusCreated))
		r.Post("/refresh-token", Handle(h.refreshToken, true, http.StatusOK))

		r.With(authMiddleware).Group(func(r chi.Router) {
			r.Put("/update", Handle(h.update, true, http.StatusNoContent))

			r.With(middleware.RequireRoles(model.RoleAdmin)).Group(func(r chi.Router) {
				r.Delete("/delete/{id}", Handle(h.delete, false, http.StatusNoContent))
				r.Patch("/users/{id}/activate", Handle(h.activate, false, http.StatusOK))
				r.Patch("/users/{id}/deactivate", Handle(h.deactivate, false, http.StatusOK))
			})
		})
	})
}

func (h *AuthHandler) login(r *http.Request, req *model.LoginInput) (*model.LoginResult, error) {
	return h.s.Login(r.Context(), req)
}

func (h *AuthHandler) register(r *http.Request, req *model.RegisterInput) (*model.User, error) {
	return h.s.Register(r.Context(), req)
}

// refreshToken accepts the expired access token in the body or as a bearer token.
func (h *AuthHandler) refreshToken(r *http.Request, req *model.RefreshTokenInput) (*model.TokenPair, error) {
	if req.AccessToken == "" {
		if token, ok := middleware.BearerToken(r); ok {
			req.AccessToken = token
		}
	}
	return h.s.RefreshToken(r.Context(), req)
}

func (h *AuthHandler) update(r *http.Request, req *model.UpdateUserInput) (*model.User, error) {
	actorId, _, err := actorFrom(r)
	if err != nil {
		return nil, err
	}
	return h.s.UpdateUser(r.Context(), actorId, req)
}

func (h *AuthHandler) delete(r *http.Request, _ *struct{}) (struct{}, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.s.DeleteUser(r.Context(), id)
}

func (h *AuthHandler) activate(r *http.Request, _ *struct{}) (*model.User, error) {
	return h.setActive(r, true)
}

func (h *AuthHandler) deactivate(r *http.Request, _ *struct{}) (*model.User, error) {
	return h.setActive(r, false)
}

func (h *AuthHandler) setActive(r *http.Request, active bool) (*model.User, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return nil, err
	}
	return h.s.SetUserActive(r.Context(), id, active)
}
