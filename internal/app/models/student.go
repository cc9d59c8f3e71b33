package models

// Student defines the student model based on the 'student' table.
// The id is caller-supplied, not generated.
type Student struct {
	StudentID   int64   `json:"student_id" db:"student_id" example:"1001"`        // Primary key, supplied by the caller
	StudentName string  `json:"student_name" db:"student_name" example:"Ada Day"` // Full name
	YearLevel   int     `json:"year_level" db:"year_level" example:"2"`           // Year of study, 1-4 in fixtures
	GPA         float64 `json:"gpa" db:"gpa" example:"3.41"`                      // Grade point average
	DeptID      int64   `json:"dept_id" db:"dept_id" example:"3"`                 // Department reference; not validated on write
}

// StudentUpdate carries a partial update: nil fields are left untouched.
// StudentID itself is never updatable.
type StudentUpdate struct {
	StudentName *string
	YearLevel   *int
	GPA         *float64
	DeptID      *int64
}

// IsEmpty reports whether the update patches no columns at all. An empty
// update set is a client error distinct from "student not found".
func (u StudentUpdate) IsEmpty() bool {
	return u.StudentName == nil && u.YearLevel == nil && u.GPA == nil && u.DeptID == nil
}
