package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okan/enrollment/internal/app/controllers"
	"github.com/okan/enrollment/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
	adminMiddleware *middleware.AdminMiddleware,
) {
	// The root redirects to the local UI page.
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/ui/")
	})

	// --- Public routes ---
	router.POST("/login", authController.Login)

	// --- Bearer-protected student routes ---
	students := router.Group("/students")
	students.Use(authMiddleware.JWTAuth())
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
	}

	// --- Admin routes: loopback + Basic auth, no bearer tokens ---
	admin := router.Group("/admin")
	admin.Use(adminMiddleware.LocalBasicAuth())
	{
		admin.POST("/seed", adminController.RunSeed)
		admin.POST("/run-tests", adminController.RunTests)
	}

	// Health check endpoint (public)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
