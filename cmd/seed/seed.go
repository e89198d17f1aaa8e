package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
	"schoolhub/pkg/logging"
)

type SeedFile struct {
	Users       []SeedUser       `yaml:"users"`
	Departments []SeedDepartment `yaml:"departments"`
}

type SeedUser struct {
	Name        string  `yaml:"name"`
	Email       string  `yaml:"email"`
	Password    string  `yaml:"password"`
	PhoneNumber *string `yaml:"phoneNumber"`
	Role        string  `yaml:"role"`
}

type SeedDepartment struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	// HeadEmail names a seeded teacher.
	HeadEmail string `yaml:"headEmail"`
}

type registrar interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.User, error)
}

type departmentCreator interface {
	Create(ctx context.Context, input *model.CreateDepartmentInput) (*model.Department, error)
}

type userFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read seed file: %w", err)
	}
	var seed SeedFile
	if err := yaml.UnmarshalStrict(raw, &seed); err != nil {
		return nil, fmt.Errorf("cannot parse seed file: %w", err)
	}
	return &seed, nil
}

type seeder struct {
	auth        registrar
	departments departmentCreator
	users       userFinder
}

type seedResult struct {
	Created int
	Skipped int
}

// Run creates users first so departments can reference their heads. Existing entries are skipped.
func (s *seeder) Run(ctx context.Context, seed *SeedFile) (seedResult, error) {
	var res seedResult
	logger, _ := logging.GetFromContext(ctx)

	for _, u := range seed.Users {
		_, err := s.auth.Register(ctx, &model.RegisterInput{
			Name:        u.Name,
			Email:       u.Email,
			Password:    u.Password,
			PhoneNumber: u.PhoneNumber,
			Role:        model.Role(u.Role),
		})
		switch {
		case errors.Is(err, errdefs.ErrAlreadyExists):
			res.Skipped++
			if logger != nil {
				logger.Info(ctx, "user already exists", zap.String("email", u.Email))
			}
		case err != nil:
			return res, fmt.Errorf("cannot seed user %s: %w", u.Email, err)
		default:
			res.Created++
		}
	}

	for _, d := range seed.Departments {
		input := &model.CreateDepartmentInput{Name: d.Name, Description: d.Description}
		if d.HeadEmail != "" {
			head, err := s.users.GetUserByEmail(ctx, d.HeadEmail)
			if err != nil {
				return res, fmt.Errorf("cannot resolve head of department %s: %w", d.HeadEmail, err)
			}
			input.HeadOfDepartmentId = &head.Id
		}

		_, err := s.departments.Create(ctx, input)
		switch {
		case errors.Is(err, errdefs.ErrAlreadyExists):
			res.Skipped++
			if logger != nil {
				logger.Info(ctx, "department already exists", zap.String("name", d.Name))
			}
		case err != nil:
			return res, fmt.Errorf("cannot seed department %s: %w", d.Name, err)
		default:
			res.Created++
		}
	}
	return res, nil
}
