package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"schoolhub/internal/errdefs"
	"schoolhub/internal/model"
)

// CourseService manages courses within a department. Deleting a course only deactivates it.
type CourseService struct {
	departments DepartmentRepository
	courses     CourseRepository
	fanout      *FanOut
}

func NewCourseService(departments DepartmentRepository, courses CourseRepository, fanout *FanOut) *CourseService {
	return &CourseService{departments: departments, courses: courses, fanout: fanout}
}

func courseCodeTaken(code string) error {
	return errdefs.Newf(errdefs.ErrAlreadyExists, "Course with code: %s already exists in this department.", code)
}

func (s *CourseService) Create(ctx context.Context, departmentId uuid.UUID, input *model.CreateCourseInput) (*model.Course, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	department, err := s.department(ctx, departmentId)
	if err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.Code)
	if err := ensureUnique(ctx, code, "", s.codeExists(departmentId), courseCodeTaken); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	course, err := s.courses.CreateCourse(ctx, &model.RepositoryCreateCourseInput{
		Id:           id,
		DepartmentId: departmentId,
		Name:         strings.TrimSpace(input.Name),
		Code:         code,
		Description:  input.Description,
		Credits:      input.Credits,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, courseCodeTaken(code)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, courseNotices(ActionCreated, course, department)...)
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, departmentId, id uuid.UUID, input *model.UpdateCourseInput) (*model.Course, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	department, err := s.department(ctx, departmentId)
	if err != nil {
		return nil, err
	}
	current, err := s.course(ctx, departmentId, id)
	if err != nil {
		return nil, err
	}

	code := trimmedOrNil(input.Code)
	if code != nil {
		if err := ensureUnique(ctx, *code, current.Code, s.codeExists(departmentId), courseCodeTaken); err != nil {
			return nil, err
		}
	}

	course, err := s.courses.UpdateCourse(ctx, id, &model.RepositoryUpdateCourseInput{
		Name:        trimmedOrNil(input.Name),
		Code:        code,
		Description: input.Description,
		Credits:     input.Credits,
	})
	if err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) && code != nil {
			return nil, courseCodeTaken(*code)
		}
		return nil, err
	}

	s.fanout.Emit(ctx, courseNotices(ActionUpdated, course, department)...)
	return course, nil
}

// Delete deactivates the course. Its batches and history stay in place.
func (s *CourseService) Delete(ctx context.Context, departmentId, id uuid.UUID) error {
	department, err := s.department(ctx, departmentId)
	if err != nil {
		return err
	}
	current, err := s.course(ctx, departmentId, id)
	if err != nil {
		return err
	}
	if !current.IsActive {
		return errdefs.Newf(errdefs.ErrInvalidState, "Course with id: %s is already inactive.", id)
	}

	inactive := false
	course, err := s.courses.UpdateCourse(ctx, id, &model.RepositoryUpdateCourseInput{IsActive: &inactive})
	if err != nil {
		return err
	}

	s.fanout.Emit(ctx, courseNotices(ActionDeleted, course, department)...)
	return nil
}

func (s *CourseService) GetAll(ctx context.Context, departmentId uuid.UUID, params model.PageParams) (*model.Page[*model.Course], error) {
	if _, err := s.department(ctx, departmentId); err != nil {
		return nil, err
	}
	return s.courses.ListCoursesForDepartment(ctx, departmentId, params)
}

func (s *CourseService) GetById(ctx context.Context, departmentId, id uuid.UUID) (*model.Course, error) {
	if _, err := s.department(ctx, departmentId); err != nil {
		return nil, err
	}
	return s.course(ctx, departmentId, id)
}

func (s *CourseService) department(ctx context.Context, id uuid.UUID) (*model.Department, error) {
	department, err := s.departments.GetDepartment(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Department", id)
	}
	return department, nil
}

func (s *CourseService) course(ctx context.Context, departmentId, id uuid.UUID) (*model.Course, error) {
	course, err := s.courses.GetCourseForDepartment(ctx, departmentId, id)
	if err != nil {
		return nil, notFoundAs(err, "Course", id)
	}
	return course, nil
}

func (s *CourseService) codeExists(departmentId uuid.UUID) func(context.Context, string) (bool, error) {
	return func(ctx context.Context, code string) (bool, error) {
		return s.courses.CourseCodeExists(ctx, departmentId, code)
	}
}
