package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okan/enrollment/internal/app/models"
	"github.com/okan/enrollment/internal/pkg/apperrors"
	"github.com/okan/enrollment/internal/pkg/dberrors"
)

// IStudentRepository defines database operations on student records.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Search(ctx context.Context, search string) ([]models.Student, error)
	Update(ctx context.Context, id int64, update models.StudentUpdate) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

var _ IStudentRepository = (*StudentRepository)(nil)

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a single student row. A duplicate caller-supplied primary key
// is reported as apperrors.ErrStudentAlreadyExists, detected by SQLSTATE
// rather than by matching driver message text.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO student (student_id, student_name, year_level, gpa, dept_id)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.StudentName,
		student.YearLevel,
		student.GPA,
		student.DeptID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentAlreadyExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT student_id, student_name, year_level, gpa, dept_id
		FROM student
		WHERE student_id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.StudentID,
		&student.StudentName,
		&student.YearLevel,
		&student.GPA,
		&student.DeptID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Search retrieves all students, optionally filtered by a name substring.
// Matching is delegated to the database's LIKE with wildcard-wrapped input;
// literal % and _ in the search term are not escaped.
func (r *StudentRepository) Search(ctx context.Context, search string) ([]models.Student, error) {
	query := `
		SELECT student_id, student_name, year_level, gpa, dept_id
		FROM student
	`
	var args []interface{}
	if search != "" {
		query += ` WHERE student_name LIKE '%' || $1 || '%'`
		args = append(args, search)
	}
	query += ` ORDER BY student_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.StudentID,
			&student.StudentName,
			&student.YearLevel,
			&student.GPA,
			&student.DeptID,
		); err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}

	return students, nil
}

// Update patches only the supplied columns. The affected-row count of the
// single UPDATE is the not-found signal, so there is no separate existence
// check to race against a concurrent delete.
func (r *StudentRepository) Update(ctx context.Context, id int64, update models.StudentUpdate) error {
	var sets []string
	var args []interface{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.StudentName != nil {
		addSet("student_name", *update.StudentName)
	}
	if update.YearLevel != nil {
		addSet("year_level", *update.YearLevel)
	}
	if update.GPA != nil {
		addSet("gpa", *update.GPA)
	}
	if update.DeptID != nil {
		addSet("dept_id", *update.DeptID)
	}

	if len(sets) == 0 {
		return apperrors.NewValidationError("", "no updatable fields supplied")
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE student SET %s WHERE student_id = $%d`,
		strings.Join(sets, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student row; zero rows affected means the id was absent.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student WHERE student_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
