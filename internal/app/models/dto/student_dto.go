package dto

import (
	"github.com/okan/enrollment/internal/app/models"
	"github.com/okan/enrollment/internal/pkg/apperrors"
)

// CreateStudentRequest carries a full student record. All five fields are
// required; pointers distinguish "absent" from zero values so the 400 body can
// name the missing field.
type CreateStudentRequest struct {
	StudentID   *int64   `json:"student_id"`
	StudentName *string  `json:"student_name"`
	YearLevel   *int     `json:"year_level"`
	GPA         *float64 `json:"gpa"`
	DeptID      *int64   `json:"dept_id"`
}

// Validate checks required fields in a fixed order; the first missing field
// short-circuits.
func (r *CreateStudentRequest) Validate() error {
	if r.StudentID == nil {
		return apperrors.NewMissingFieldError("student_id")
	}
	if r.StudentName == nil {
		return apperrors.NewMissingFieldError("student_name")
	}
	if r.YearLevel == nil {
		return apperrors.NewMissingFieldError("year_level")
	}
	if r.GPA == nil {
		return apperrors.NewMissingFieldError("gpa")
	}
	if r.DeptID == nil {
		return apperrors.NewMissingFieldError("dept_id")
	}
	return nil
}

// ToModel converts a validated request into a Student row.
func (r *CreateStudentRequest) ToModel() models.Student {
	return models.Student{
		StudentID:   *r.StudentID,
		StudentName: *r.StudentName,
		YearLevel:   *r.YearLevel,
		GPA:         *r.GPA,
		DeptID:      *r.DeptID,
	}
}

// UpdateStudentRequest carries a partial student update. Any subset of the
// four updatable fields may be present; student_id is not updatable.
type UpdateStudentRequest struct {
	StudentName *string  `json:"student_name"`
	YearLevel   *int     `json:"year_level"`
	GPA         *float64 `json:"gpa"`
	DeptID      *int64   `json:"dept_id"`
}

// ToUpdate converts the request into the repository patch struct.
func (r *UpdateStudentRequest) ToUpdate() models.StudentUpdate {
	return models.StudentUpdate{
		StudentName: r.StudentName,
		YearLevel:   r.YearLevel,
		GPA:         r.GPA,
		DeptID:      r.DeptID,
	}
}
