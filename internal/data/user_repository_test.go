package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

func TestUserRepository_GetUserByEmail(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	now := time.Now()
	user := &model.User{
		Id: uuid.New(), Email: "Ada@Example.com", Name: "Ada", PhoneNumber: nilString,
		PasswordHash: "hash", Role: model.RoleTeacher, IsActive: true,
		RefreshToken: nilString, RefreshTokenExpiry: nilTime, CreatedAt: now, EditedAt: now,
	}

	mockPool.ExpectQuery(`FROM users WHERE upper\(email\) = upper\(\$1\)`).
		WithArgs("ada@example.com").
		WillReturnRows(userRows(user))

	got, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada@Example.com", got.Email)
	assert.True(t, got.IsInRole(model.RoleTeacher))
}

func TestUserRepository_CreateUserWithProfile(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	ctx := context.Background()
	now := time.Now()
	user := &model.User{
		Id: uuid.New(), Email: "t@example.com", Name: "T", PhoneNumber: nilString,
		PasswordHash: "hash", Role: model.RoleTeacher, IsActive: true,
		RefreshToken: nilString, RefreshTokenExpiry: nilTime, CreatedAt: now, EditedAt: now,
	}

	mockPool.ExpectBegin()
	mockPool.ExpectQuery("INSERT INTO users").
		WithArgs(user.Id, user.Email, user.Name, nilString, "hash", model.RoleTeacher).
		WillReturnRows(userRows(user))
	mockPool.ExpectExec(`INSERT INTO teachers \(user_id\) VALUES \(\$1\)`).
		WithArgs(user.Id).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()

	tx, err := repo.NewUserCreationRepositoryTx(ctx)
	require.NoError(t, err)

	created, err := tx.CreateUser(ctx, &model.RepositoryCreateUserInput{
		Id: user.Id, Email: user.Email, Name: user.Name, PasswordHash: "hash", Role: model.RoleTeacher,
	})
	require.NoError(t, err)
	require.NoError(t, tx.CreateProfile(ctx, created.Role, created.Id))
	require.NoError(t, tx.Commit(ctx))
}

func TestUserRepository_CreateProfileUnknownRole(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	ctx := context.Background()

	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	tx, err := repo.NewUserCreationRepositoryTx(ctx)
	require.NoError(t, err)
	assert.ErrorIs(t, tx.CreateProfile(ctx, model.Role("Janitor"), uuid.New()), errdefs.ErrNotFound)
	require.NoError(t, tx.Rollback(ctx))
}

func TestUserRepository_GetProfile(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	id := uuid.New()

	mockPool.ExpectQuery(`FROM students p JOIN users u ON u.id = p.user_id WHERE p.user_id = \$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "email", "phone_number", "is_active", "created_at"}).
			AddRow(id, "S", "s@example.com", nilString, true, time.Now()))

	profile, err := repo.GetProfile(context.Background(), model.RoleStudent, id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.UserId)
}

func TestUserRepository_ListProfilesSearch(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)

	mockPool.ExpectQuery(`SELECT count\(\*\) FROM admins p JOIN users u ON u.id = p.user_id WHERE \(lower\(u.name\) LIKE \$1 OR lower\(u.email\) LIKE \$1\)`).
		WithArgs("%ada%").
		WillReturnRows(countRows(0))
	mockPool.ExpectQuery(`ORDER BY "u"."email" DESC LIMIT \$2 OFFSET \$3`).
		WithArgs("%ada%", 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "email", "phone_number", "is_active", "created_at"}))

	page, err := repo.ListProfiles(context.Background(), model.RoleAdmin, model.PageParams{SearchTerm: "ADA", OrderBy: "email desc"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestUserRepository_DeleteUser_Error(t *testing.T) {
	mockPool := newMockPool(t)
	repo := NewUserRepository(mockPool)
	id := uuid.New()
	boom := errors.New("connection reset")

	mockPool.ExpectExec("DELETE FROM users").
		WithArgs(id).
		WillReturnError(boom)

	err := repo.DeleteUser(context.Background(), id)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, pgx.ErrNoRows)
}
