package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/okan/enrollment/internal/app/models"
	"github.com/okan/enrollment/internal/app/models/dto"
	"github.com/okan/enrollment/internal/app/repositories"
	"github.com/okan/enrollment/internal/pkg/apperrors"
)

// StudentService defines student record operations consumed by the controllers.
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	ListStudents(ctx context.Context, search string) ([]models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// CreateStudent validates and inserts a new student record.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	student := req.ToModel()
	if err := s.studentRepo.Create(ctx, &student); err != nil {
		if errors.Is(err, apperrors.ErrStudentAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return &student, nil
}

// GetStudentByID retrieves a single student record.
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// ListStudents retrieves all students, optionally filtered by a name substring.
func (s *studentService) ListStudents(ctx context.Context, search string) ([]models.Student, error) {
	students, err := s.studentRepo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// UpdateStudent patches the supplied fields of an existing record. An update
// with no recognized fields is a client error, reported before any SQL runs
// so it stays distinct from "student not found".
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) error {
	update := req.ToUpdate()
	if update.IsEmpty() {
		return apperrors.NewValidationError("", "no updatable fields supplied")
	}

	return s.studentRepo.Update(ctx, id, update)
}

// DeleteStudent removes a student record.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
