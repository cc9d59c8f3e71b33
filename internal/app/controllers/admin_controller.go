package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/okan/enrollment/internal/pkg/render"
	"github.com/okan/enrollment/internal/pkg/scriptrunner"
)

// AdminController triggers out-of-band fixture seeding and test execution by
// shelling out to the configured scripts. The routes sit behind the loopback
// plus Basic-auth gate, not the bearer pipeline.
type AdminController struct {
	runner     *scriptrunner.Runner
	seedScript string
	testScript string
	logger     zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(runner *scriptrunner.Runner, seedScript, testScript string, logger zerolog.Logger) *AdminController {
	return &AdminController{
		runner:     runner,
		seedScript: seedScript,
		testScript: testScript,
		logger:     logger,
	}
}

// RunSeed executes the fixture seeding script
// @Summary Seed fixture data
// @Description Runs the configured seed script and returns its captured output and exit status
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Script outcome"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not on the loopback interface"
// @Router /admin/seed [post]
func (c *AdminController) RunSeed(ctx *gin.Context) {
	c.logger.Info().Str("script", c.seedScript).Msg("Admin seed requested")
	result := c.runner.Run(ctx.Request.Context(), c.seedScript)
	render.ScriptResult(ctx, result.OK, result.ExitCode, result.Output)
}

// RunTests executes the API test script
// @Summary Run the test suite
// @Description Runs the configured test script and returns its captured output and exit status
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Script outcome"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller is not on the loopback interface"
// @Router /admin/run-tests [post]
func (c *AdminController) RunTests(ctx *gin.Context) {
	c.logger.Info().Str("script", c.testScript).Msg("Admin test run requested")
	result := c.runner.Run(ctx.Request.Context(), c.testScript)
	render.ScriptResult(ctx, result.OK, result.ExitCode, result.Output)
}
