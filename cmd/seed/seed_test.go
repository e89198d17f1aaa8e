package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

type fakeRegistrar struct {
	existing map[string]bool
	users    map[string]*model.User
}

func (f *fakeRegistrar) Register(_ context.Context, input *model.RegisterInput) (*model.User, error) {
	if f.existing[input.Email] {
		return nil, errdefs.Newf(errdefs.ErrAlreadyExists, "User with email: %s already exists.", input.Email)
	}
	u := &model.User{Id: uuid.New(), Email: input.Email, Role: input.Role}
	f.users[input.Email] = u
	return u, nil
}

func (f *fakeRegistrar) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, errdefs.ErrNotFound
}

type fakeDepartments struct {
	created []*model.CreateDepartmentInput
}

func (f *fakeDepartments) Create(_ context.Context, input *model.CreateDepartmentInput) (*model.Department, error) {
	for _, c := range f.created {
		if c.Name == input.Name {
			return nil, errdefs.Newf(errdefs.ErrAlreadyExists, "Department with name: %s already exists.", input.Name)
		}
	}
	f.created = append(f.created, input)
	return &model.Department{Id: uuid.New(), Name: input.Name}, nil
}

const sampleSeed = `
users:
  - name: Root
    email: root@school.test
    password: changeme123
    role: Admin
  - name: Grace
    email: grace@school.test
    password: changeme123
    role: Teacher
departments:
  - name: Mathematics
    headEmail: grace@school.test
  - name: Mathematics
`

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed.Users, 2)
	assert.Equal(t, "Admin", seed.Users[0].Role)
	assert.Equal(t, "grace@school.test", seed.Departments[0].HeadEmail)

	require.NoError(t, os.WriteFile(path, []byte("users:\n  - nickname: x\n"), 0o600))
	_, err = LoadSeedFile(path)
	assert.Error(t, err, "unknown fields are rejected")
}

func TestSeederRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))
	seed, err := LoadSeedFile(path)
	require.NoError(t, err)

	users := &fakeRegistrar{
		existing: map[string]bool{"root@school.test": true},
		users:    map[string]*model.User{},
	}
	departments := &fakeDepartments{}
	s := &seeder{auth: users, departments: departments, users: users}

	res, err := s.Run(context.Background(), seed)
	require.NoError(t, err)
	assert.Equal(t, seedResult{Created: 2, Skipped: 2}, res)

	require.Len(t, departments.created, 1)
	require.NotNil(t, departments.created[0].HeadOfDepartmentId)
	assert.Equal(t, users.users["grace@school.test"].Id, *departments.created[0].HeadOfDepartmentId)
}

func TestSeederRunUnknownHead(t *testing.T) {
	users := &fakeRegistrar{existing: map[string]bool{}, users: map[string]*model.User{}}
	s := &seeder{auth: users, departments: &fakeDepartments{}, users: users}

	_, err := s.Run(context.Background(), &SeedFile{
		Departments: []SeedDepartment{{Name: "Physics", HeadEmail: "nobody@school.test"}},
	})
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}
