// Package seed inserts fixture data into the enrollment schema: the fixed
// department list plus randomized instructors, courses, students and
// enrollments. Ids continue from MAX(id)+1 per table and inserts are
// idempotent, so repeated runs only add rows.
package seed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/okan/enrollment/internal/app/models"
)

// Counts controls how many rows of each randomized kind a run generates.
type Counts struct {
	Instructors int
	Students    int
	Enrollments int
}

// DefaultCounts mirrors the historical fixture sizes.
var DefaultCounts = Counts{
	Instructors: 15,
	Students:    50,
	Enrollments: 100,
}

// Seeder generates and inserts fixture rows.
type Seeder struct {
	db     *pgxpool.Pool
	rng    *rand.Rand
	logger zerolog.Logger
}

// NewSeeder creates a seeder. The rng seed makes runs reproducible.
func NewSeeder(db *pgxpool.Pool, rngSeed int64, logger zerolog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		rng:    rand.New(rand.NewSource(rngSeed)),
		logger: logger,
	}
}

// Run inserts the full fixture set.
func (s *Seeder) Run(ctx context.Context, counts Counts) error {
	departments := Departments()
	if err := s.insertDepartments(ctx, departments); err != nil {
		return fmt.Errorf("seeding departments: %w", err)
	}
	s.logger.Info().Int("count", len(departments)).Msg("Departments seeded")

	instructors, err := s.generateInstructors(ctx, departments, counts.Instructors)
	if err != nil {
		return err
	}
	if err := s.insertInstructors(ctx, instructors); err != nil {
		return fmt.Errorf("seeding instructors: %w", err)
	}
	s.logger.Info().Int("count", len(instructors)).Msg("Instructors seeded")

	courses, err := s.generateCourses(ctx, departments)
	if err != nil {
		return err
	}
	if err := s.insertCourses(ctx, courses); err != nil {
		return fmt.Errorf("seeding courses: %w", err)
	}
	s.logger.Info().Int("count", len(courses)).Msg("Courses seeded")

	students, err := s.generateStudents(ctx, departments, counts.Students)
	if err != nil {
		return err
	}
	if err := s.insertStudents(ctx, students); err != nil {
		return fmt.Errorf("seeding students: %w", err)
	}
	s.logger.Info().Int("count", len(students)).Msg("Students seeded")

	enrollments, err := s.generateEnrollments(ctx, students, courses, counts.Enrollments)
	if err != nil {
		return err
	}
	if err := s.insertEnrollments(ctx, enrollments); err != nil {
		return fmt.Errorf("seeding enrollments: %w", err)
	}
	s.logger.Info().Int("count", len(enrollments)).Msg("Enrollments seeded")

	return nil
}

// nextID returns MAX(idColumn)+1 so repeated runs extend rather than collide.
func (s *Seeder) nextID(ctx context.Context, table, idColumn string) (int64, error) {
	var maxID int64
	query := fmt.Sprintf("SELECT COALESCE(MAX(%s), 0) FROM %s", idColumn, table)
	if err := s.db.QueryRow(ctx, query).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", table, err)
	}
	return maxID + 1, nil
}

func (s *Seeder) generateInstructors(ctx context.Context, departments []models.Department, count int) ([]models.Instructor, error) {
	startID, err := s.nextID(ctx, "instructor", "instr_id")
	if err != nil {
		return nil, err
	}

	instructors := make([]models.Instructor, 0, count)
	for offset := 0; offset < count; offset++ {
		instructors = append(instructors, models.Instructor{
			InstrID:   startID + int64(offset),
			InstrName: s.randomName(),
			Salary:    round2(50000 + s.rng.Float64()*70000),
			DeptID:    departments[s.rng.Intn(len(departments))].DeptID,
		})
	}
	return instructors, nil
}

func (s *Seeder) generateCourses(ctx context.Context, departments []models.Department) ([]models.Course, error) {
	startID, err := s.nextID(ctx, "course", "course_id")
	if err != nil {
		return nil, err
	}

	titles := CourseTitles()
	courses := make([]models.Course, 0, len(titles))
	credits := []int{3, 4}
	for offset, t := range titles {
		courses = append(courses, models.Course{
			CourseID:   startID + int64(offset),
			CourseCode: t.Code,
			Title:      t.Title,
			Credits:    credits[s.rng.Intn(len(credits))],
			DeptID:     departments[s.rng.Intn(len(departments))].DeptID,
		})
	}
	return courses, nil
}

func (s *Seeder) generateStudents(ctx context.Context, departments []models.Department, count int) ([]models.Student, error) {
	startID, err := s.nextID(ctx, "student", "student_id")
	if err != nil {
		return nil, err
	}

	students := make([]models.Student, 0, count)
	for offset := 0; offset < count; offset++ {
		students = append(students, models.Student{
			StudentID:   startID + int64(offset),
			StudentName: s.randomName(),
			YearLevel:   1 + s.rng.Intn(4),
			GPA:         round2(1.0 + s.rng.Float64()*3.0),
			DeptID:      departments[s.rng.Intn(len(departments))].DeptID,
		})
	}
	return students, nil
}

func (s *Seeder) generateEnrollments(ctx context.Context, students []models.Student, courses []models.Course, count int) ([]models.Enrollment, error) {
	startID, err := s.nextID(ctx, "enrollment", "enroll_id")
	if err != nil {
		return nil, err
	}

	semesters := []string{"2023-1", "2023-2", "2024-1"}
	enrollments := make([]models.Enrollment, 0, count)
	for offset := 0; offset < count; offset++ {
		enrollments = append(enrollments, models.Enrollment{
			EnrollID:  startID + int64(offset),
			StudentID: students[s.rng.Intn(len(students))].StudentID,
			CourseID:  courses[s.rng.Intn(len(courses))].CourseID,
			Semester:  semesters[s.rng.Intn(len(semesters))],
			Grade:     round2(1.0 + s.rng.Float64()*3.0),
		})
	}
	return enrollments, nil
}

func (s *Seeder) insertDepartments(ctx context.Context, departments []models.Department) error {
	for _, d := range departments {
		_, err := s.db.Exec(ctx,
			`INSERT INTO department (dept_id, dept_name) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			d.DeptID, d.DeptName)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) insertInstructors(ctx context.Context, instructors []models.Instructor) error {
	for _, i := range instructors {
		_, err := s.db.Exec(ctx,
			`INSERT INTO instructor (instr_id, instr_name, salary, dept_id) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`,
			i.InstrID, i.InstrName, i.Salary, i.DeptID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) insertCourses(ctx context.Context, courses []models.Course) error {
	for _, c := range courses {
		_, err := s.db.Exec(ctx,
			`INSERT INTO course (course_id, course_code, title, credits, dept_id) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			c.CourseID, c.CourseCode, c.Title, c.Credits, c.DeptID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) insertStudents(ctx context.Context, students []models.Student) error {
	for _, st := range students {
		_, err := s.db.Exec(ctx,
			`INSERT INTO student (student_id, student_name, year_level, gpa, dept_id) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			st.StudentID, st.StudentName, st.YearLevel, st.GPA, st.DeptID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) insertEnrollments(ctx context.Context, enrollments []models.Enrollment) error {
	for _, e := range enrollments {
		_, err := s.db.Exec(ctx,
			`INSERT INTO enrollment (enroll_id, student_id, course_id, semester, grade) VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			e.EnrollID, e.StudentID, e.CourseID, e.Semester, e.Grade)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) randomName() string {
	first := firstNames[s.rng.Intn(len(firstNames))]
	last := lastNames[s.rng.Intn(len(lastNames))]
	return first + " " + last
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
