package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// AdminController handles the moderation panel
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// Dashboard returns the moderation counters plus recent activity
// @Summary Admin dashboard
// @Tags admin
// @Produce json
// @Success 200 {object} dto.AdminDashboardResponse
// @Router /admin/stats [get]
func (c *AdminController) Dashboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.Dashboard())
}

// ListUsers returns every non-admin account
func (c *AdminController) ListUsers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.ListUsers())
}

// UpdateUserStatus activates or deactivates an account
// @Summary Toggle user status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse "Cannot modify admin user"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id}/status [patch]
func (c *AdminController) UpdateUserStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "isActive is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.SetUserActive(ctx.Param("id"), *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "User status updated"})
}

// ListJobs returns every active posting, newest first
func (c *AdminController) ListJobs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.ListJobs())
}

// UpdateJobStatus activates or deactivates a posting
func (c *AdminController) UpdateJobStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "isActive is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.SetJobActive(ctx.Param("id"), *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Job status updated"})
}

// ListEvents returns every active event, newest first
func (c *AdminController) ListEvents(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.ListEvents())
}

// UpdateEventStatus activates or deactivates an event
func (c *AdminController) UpdateEventStatus(ctx *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "isActive is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.adminService.SetEventActive(ctx.Param("id"), *req.IsActive); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Event status updated"})
}

// ListMessages returns every message in the system, newest first
func (c *AdminController) ListMessages(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.adminService.ListMessages())
}
