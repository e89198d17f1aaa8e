package data

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/internal/service"
)

const userColumns = `
	id, email, name, phone_number, password_hash, role, is_active,
	refresh_token, refresh_token_expiry, created_at, edited_at`

var profileTables = map[model.Role]string{
	model.RoleAdmin:   "admins",
	model.RoleTeacher: "teachers",
	model.RoleStudent: "students",
}

func profileTable(role model.Role) (string, error) {
	table, ok := profileTables[role]
	if !ok {
		return "", fmt.Errorf("role %q: %w", role, errdefs.ErrNotFound)
	}
	return table, nil
}

func profileListQuery(table string) listQuery {
	return listQuery{
		columns: "u.id AS user_id, u.name, u.email, u.phone_number, u.is_active, p.created_at",
		from:    fmt.Sprintf("FROM %s p\nJOIN users u ON u.id = p.user_id", table),
		sortable: map[string]string{
			"name":        "u.name",
			"email":       "u.email",
			"createddate": "p.created_at",
		},
		defaultSort: `"u"."name" ASC`,
		search:      []string{"u.name", "u.email"},
	}
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) NewUserCreationRepositoryTx(ctx context.Context) (service.UserCreationRepositoryTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &UserCreationRepository{tx: tx}, nil
}

func (r *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT` + userColumns + `
FROM users
WHERE id = $1
`
	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, id); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT` + userColumns + `
FROM users
WHERE upper(email) = upper($1)
`
	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, email); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, id uuid.UUID, input *model.RepositoryUpdateUserInput) (*model.User, error) {
	query, args, err := buildUserUpdateQuery(input)
	if err != nil {
		return nil, err
	}
	args = append(args, id)
	var user model.User
	if err := pgxscan.Get(ctx, r.db, &user, query, args...); err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return execAffectingOne(ctx, r.db, `DELETE FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetProfile(ctx context.Context, role model.Role, userId uuid.UUID) (*model.Profile, error) {
	table, err := profileTable(role)
	if err != nil {
		return nil, err
	}
	q := profileListQuery(table)
	query := fmt.Sprintf("SELECT %s\n%s\nWHERE p.user_id = $1", q.columns, q.from)

	var profile model.Profile
	if err := pgxscan.Get(ctx, r.db, &profile, query, userId); err != nil {
		return nil, handleError(err)
	}
	return &profile, nil
}

func (r *UserRepository) ListProfiles(ctx context.Context, role model.Role, params model.PageParams) (*model.Page[*model.Profile], error) {
	table, err := profileTable(role)
	if err != nil {
		return nil, err
	}
	return selectPage[*model.Profile](ctx, r.db, profileListQuery(table), nil, nil, params)
}

type UserCreationRepository struct {
	tx pgx.Tx
}

func (r *UserCreationRepository) CreateUser(ctx context.Context, input *model.RepositoryCreateUserInput) (*model.User, error) {
	query := `
INSERT INTO users (id, email, name, phone_number, password_hash, role)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + userColumns

	var user model.User
	err := pgxscan.Get(ctx, r.tx, &user, query,
		input.Id,
		input.Email,
		input.Name,
		input.PhoneNumber,
		input.PasswordHash,
		input.Role,
	)
	if err != nil {
		return nil, handleError(err)
	}
	return &user, nil
}

func (r *UserCreationRepository) CreateProfile(ctx context.Context, role model.Role, userId uuid.UUID) error {
	table, err := profileTable(role)
	if err != nil {
		return err
	}
	if _, err := r.tx.Exec(ctx, fmt.Sprintf("INSERT INTO %s (user_id) VALUES ($1)", table), userId); err != nil {
		return handleError(err)
	}
	return nil
}

func (r *UserCreationRepository) Commit(ctx context.Context) error {
	return r.tx.Commit(ctx)
}

func (r *UserCreationRepository) Rollback(ctx context.Context) error {
	return r.tx.Rollback(ctx)
}
