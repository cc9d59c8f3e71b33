package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/app/models/dto"
	"github.com/okan/enrollment/internal/app/services"
	"github.com/okan/enrollment/internal/middleware"
	"github.com/okan/enrollment/internal/pkg/render"
)

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

func parseStudentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		render.Message(ctx, http.StatusBadRequest, "student ID must be an integer")
		return 0, false
	}
	return id, true
}

// CreateStudent handles student creation
// @Summary Create a student record
// @Description Inserts a new student; all five fields are required and the student_id is caller-supplied
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student record"
// @Success 201 {object} map[string]interface{} "Student created"
// @Failure 400 {object} map[string]string "Missing field or bad type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate student ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, dto.BindError(err))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Student(ctx, http.StatusCreated, *student)
}

// ListStudents retrieves all students with an optional name filter
// @Summary List students
// @Description Retrieves all students, optionally filtered by a substring of the name
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring filter"
// @Param format query string false "Response format (json or xml)"
// @Success 200 {object} map[string]interface{} "Student list, possibly empty"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Students(ctx, http.StatusOK, students)
}

// GetStudentByID retrieves a single student record
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param format query string false "Response format (json or xml)"
// @Success 200 {object} map[string]interface{} "Student record"
// @Failure 400 {object} map[string]string "Invalid student ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Student(ctx, http.StatusOK, *student)
}

// UpdateStudent patches an existing student record
// @Summary Update a student
// @Description Patches only the supplied fields; a body with no updatable fields is a client error distinct from an absent id
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} map[string]string "Student updated"
// @Failure 400 {object} map[string]string "No body, no updatable fields, or bad type"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, dto.BindError(err))
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Message(ctx, http.StatusOK, "student updated")
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} map[string]string "Student deleted"
// @Failure 400 {object} map[string]string "Invalid student ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Student not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	render.Message(ctx, http.StatusOK, "student deleted")
}
