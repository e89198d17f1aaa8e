package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

type DepartmentService struct {
	departments DepartmentRepository
	users       IdentityProvider
}

func NewDepartmentService(departments DepartmentRepository, users IdentityProvider) *DepartmentService {
	return &DepartmentService{departments: departments, users: users}
}

func departmentNameTaken(name string) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists, "Department with name: %s already exists.", name)
}

func (s *DepartmentService) Create(ctx context.Context, input *model.CreateDepartmentInput) (*model.Department, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)

	if err := ensureUnique(ctx, name, "", s.departments.DepartmentNameExists, departmentNameTaken); err != nil {
		return nil, err
	}
	if input.HeadOfDepartmentId != nil {
		if err := s.ensureHeadOfDepartment(ctx, *input.HeadOfDepartmentId); err != nil {
			return nil, err
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	department, err := s.departments.CreateDepartment(ctx, &model.RepositoryCreateDepartmentInput{
		Id:                 id,
		Name:               name,
		Description:        input.Description,
		HeadOfDepartmentId: input.HeadOfDepartmentId,
	})
	if errors.Is(err, errdefs.ErrAlreadyExists) {
		return nil, departmentNameTaken(name)
	}
	return department, err
}

func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, input *model.UpdateDepartmentInput) (*model.Department, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.ClearHeadOfDepartment && input.HeadOfDepartmentId != nil {
		return nil, validationError("headOfDepartmentId can't be set together with clearHeadOfDepartment")
	}

	current, err := s.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	name := trimmedOrNil(input.Name)
	if name != nil {
		if err := ensureUnique(ctx, *name, current.Name, s.departments.DepartmentNameExists, departmentNameTaken); err != nil {
			return nil, err
		}
	}
	if input.HeadOfDepartmentId != nil {
		if err := s.ensureHeadOfDepartment(ctx, *input.HeadOfDepartmentId); err != nil {
			return nil, err
		}
	}

	department, err := s.departments.UpdateDepartment(ctx, id, &model.RepositoryUpdateDepartmentInput{
		Name:                  name,
		Description:           input.Description,
		HeadOfDepartmentId:    input.HeadOfDepartmentId,
		ClearHeadOfDepartment: input.ClearHeadOfDepartment,
	})
	if errors.Is(err, errdefs.ErrAlreadyExists) && name != nil {
		return nil, departmentNameTaken(*name)
	}
	return department, err
}

func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetById(ctx, id); err != nil {
		return err
	}
	return notFoundAs(s.departments.DeleteDepartment(ctx, id), "Department", id)
}

func (s *DepartmentService) GetById(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	department, err := s.departments.GetDepartment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Department", id)
	}
	return department, nil
}

func (s *DepartmentService) GetAll(ctx context.Context, params model.PageParams) (*model.Page[*model.Department], error) {
	return s.departments.ListDepartments(ctx, params)
}

func (s *DepartmentService) IsTeacherHeadOfDepartment(ctx context.Context, teacherId uuid.UUID) (bool, error) {
	return s.departments.IsHeadOfDepartment(ctx, teacherId)
}

func (s *DepartmentService) ensureHeadOfDepartment(ctx context.Context, userId uuid.UUID) error {
	_, err := ensureRole(ctx, s.users, userId, model.RoleTeacher)
	if errors.Is(err, errdefs.ErrWrongRole) {
		return errdefs.Newf(errdefs.ErrWrongRole, "Head of department can be a Teacher only. Please select another User.")
	}
	return err
}
