package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// JobController handles job board operations
type JobController struct {
	jobService services.JobService
	logger     zerolog.Logger
}

// NewJobController creates a new JobController
func NewJobController(jobService services.JobService, logger zerolog.Logger) *JobController {
	return &JobController{
		jobService: jobService,
		logger:     logger,
	}
}

// List returns the active job postings, newest first
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {array} dto.JobResponse
// @Router /jobs [get]
func (c *JobController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.jobService.List())
}

// Create posts a new job
// @Summary Post a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param request body dto.CreateJobRequest true "Job posting"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /jobs [post]
func (c *JobController) Create(ctx *gin.Context) {
	var req dto.CreateJobRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	job, err := c.jobService.Create(ctx.GetString(middleware.ContextUserID), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, job)
}

// GetByID returns a single posting
func (c *JobController) GetByID(ctx *gin.Context) {
	job, err := c.jobService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, job)
}
