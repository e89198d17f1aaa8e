package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/internal/authorization"
	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

// AuthService owns user accounts and the access/refresh token pair.
type AuthService struct {
	users       UserRepository
	departments DepartmentRepository
	tokens      TokenManager
	refreshTTL  time.Duration
	now         func() time.Time
}

func NewAuthService(users UserRepository, departments DepartmentRepository, tokens TokenManager, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		departments: departments,
		tokens:      tokens,
		refreshTTL:  refreshTTL,
		now:         time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.Role.IsValid() {
		return nil, errdefs.Newf(errdefs.ErrNotFound, "Role with name: %s can't be found.", input.Role)
	}

	email := strings.TrimSpace(input.Email)
	_, err := s.users.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, emailTaken(email)
	case !errors.Is(err, errdefs.ErrNotFound):
		return nil, err
	}

	hash, err := authorization.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	repo, err := s.users.NewUserCreationRepositoryTx(ctx)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if committed {
			return
		}
		if err := repo.Rollback(ctx); err != nil {
			if logger, ok := logging.GetFromContext(ctx); ok {
				logger.Error(ctx, "Failed to Rollback", zap.Error(err))
			}
		}
	}()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	user, err := repo.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id:           id,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PhoneNumber:  trimmedOrNil(input.PhoneNumber),
		PasswordHash: hash,
		Role:         input.Role,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, emailTaken(email)
		}
		return nil, err
	}
	if err := repo.CreateProfile(ctx, user.Role, user.Id); err != nil {
		return nil, err
	}

	if err := repo.Commit(ctx); err != nil {
		return nil, err
	}
	committed = true

	return user, nil
}

func emailTaken(email string) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists, "User with email: %s already exists.", email)
}

func (s *AuthService) Login(ctx context.Context, input *model.LoginInput) (*model.LoginResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if !authorization.CheckPassword(user.PasswordHash, input.Password) {
		return nil, invalidCredentials()
	}
	if !user.IsActive {
		return nil, errdefs.Newf(errdefs.ErrPermissionDenied,
			"Your account has been deactivated. Please connect with your system administrator")
	}

	tokens, err := s.issueTokens(ctx, user, s.now().Add(s.refreshTTL))
	if err != nil {
		return nil, err
	}

	return &model.LoginResult{
		Tokens: *tokens,
		UserId: user.Id,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}

func invalidCredentials() error {
	return errdefs.Newf(errdefs.ErrAuthentication, "Invalid email or password.")
}

// RefreshToken rotates the refresh token. The new token keeps the expiry of the old one.
func (s *AuthService) RefreshToken(ctx context.Context, input *model.RefreshTokenInput) (*model.TokenPair, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	userId, _, err := s.tokens.ParseAccessToken(input.AccessToken, true)
	if err != nil {
		return nil, invalidRefresh()
	}
	user, err := s.users.GetUser(ctx, userId)
	if err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return nil, invalidRefresh()
		}
		return nil, err
	}

	if user.RefreshToken == nil || user.RefreshTokenExpiry == nil ||
		subtle.ConstantTimeCompare([]byte(*user.RefreshToken), []byte(input.RefreshToken)) != 1 ||
		!user.RefreshTokenExpiry.After(s.now()) {
		return nil, invalidRefresh()
	}
	if !user.IsActive {
		return nil, invalidRefresh()
	}

	return s.issueTokens(ctx, user, *user.RefreshTokenExpiry)
}

func invalidRefresh() error {
	return errdefs.Newf(errdefs.ErrAuthentication, "Invalid client request.")
}

func (s *AuthService) issueTokens(ctx context.Context, user *model.User, refreshExpiry time.Time) (*model.TokenPair, error) {
	accessToken, accessExpiry, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	_, err = s.users.UpdateUser(ctx, user.Id, &model.RepositoryUpdateUserInput{
		RefreshToken:       &refreshToken,
		RefreshTokenExpiry: &refreshExpiry,
	})
	if err != nil {
		return nil, err
	}

	return &model.TokenPair{
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
		AccessTokenExpiry:  accessExpiry,
		RefreshTokenExpiry: refreshExpiry,
	}, nil
}

func (s *AuthService) ValidateAccessToken(ctx context.Context, token string) (uuid.UUID, model.Role, error) {
	userId, role, err := s.tokens.ParseAccessToken(token, false)
	if err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Debug(ctx, "Rejected access token", zap.Error(err))
		}
		return uuid.Nil, "", errdefs.Newf(errdefs.ErrAuthentication, "Invalid or expired access token.")
	}
	return userId, role, nil
}

func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "User", id)
	}
	return user, nil
}

// UpdateUser changes the acting user's own account.
func (s *AuthService) UpdateUser(ctx context.Context, actorId uuid.UUID, input *model.UpdateUserInput) (*model.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if _, err := s.GetUser(ctx, actorId); err != nil {
		return nil, err
	}
	return s.users.UpdateUser(ctx, actorId, &model.RepositoryUpdateUserInput{
		Name:        trimmedOrNil(input.Name),
		PhoneNumber: trimmedOrNil(input.PhoneNumber),
	})
}

func (s *AuthService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	if err := s.ensureNotHeadOfDepartment(ctx, id, "remove"); err != nil {
		return err
	}
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return notFoundAs(err, "User", id)
	}
	return nil
}

func (s *AuthService) SetUserActive(ctx context.Context, id uuid.UUID, active bool) (*model.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsActive == active {
		state := "active"
		if !active {
			state = "inactive"
		}
		return nil, errdefs.Newf(errdefs.ErrInvalidState, "User with Id: %s is already %s.", id, state)
	}
	if !active {
		if err := s.ensureNotHeadOfDepartment(ctx, id, "deactivate"); err != nil {
			return nil, err
		}
	}
	return s.users.UpdateUser(ctx, id, &model.RepositoryUpdateUserInput{IsActive: &active})
}

func (s *AuthService) ensureNotHeadOfDepartment(ctx context.Context, id uuid.UUID, verb string) error {
	isHead, err := s.departments.IsHeadOfDepartment(ctx, id)
	if err != nil {
		return err
	}
	if isHead {
		return errdefs.Newf(errdefs.ErrConflict,
			"Can't %s this user with Id: %s. The user is currently a head of department.", verb, id)
	}
	return nil
}
