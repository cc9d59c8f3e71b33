package models

// Fixture models mirror the remaining enrollment tables. The API only
// manipulates students; these exist for the seeding binary.

// Department represents a row in the 'department' table.
type Department struct {
	DeptID   int64  `json:"dept_id" db:"dept_id"`
	DeptName string `json:"dept_name" db:"dept_name"`
}

// Instructor represents a row in the 'instructor' table.
type Instructor struct {
	InstrID   int64   `json:"instr_id" db:"instr_id"`
	InstrName string  `json:"instr_name" db:"instr_name"`
	Salary    float64 `json:"salary" db:"salary"`
	DeptID    int64   `json:"dept_id" db:"dept_id"`
}

// Course represents a row in the 'course' table.
type Course struct {
	CourseID   int64  `json:"course_id" db:"course_id"`
	CourseCode string `json:"course_code" db:"course_code"`
	Title      string `json:"title" db:"title"`
	Credits    int    `json:"credits" db:"credits"`
	DeptID     int64  `json:"dept_id" db:"dept_id"`
}

// Enrollment represents a row in the 'enrollment' table.
type Enrollment struct {
	EnrollID  int64   `json:"enroll_id" db:"enroll_id"`
	StudentID int64   `json:"student_id" db:"student_id"`
	CourseID  int64   `json:"course_id" db:"course_id"`
	Semester  string  `json:"semester" db:"semester"`
	Grade     float64 `json:"grade" db:"grade"`
}
