package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// UserController handles profile and directory search operations
type UserController struct {
	userService    services.UserService
	jobService     services.JobService
	eventService   services.EventService
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(
	userService services.UserService,
	jobService services.JobService,
	eventService services.EventService,
	messageService services.MessageService,
	logger zerolog.Logger,
) *UserController {
	return &UserController{
		userService:    userService,
		jobService:     jobService,
		eventService:   eventService,
		messageService: messageService,
		logger:         logger,
	}
}

// GetProfile returns the authenticated user's own profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Router /profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, err := c.userService.GetUserByID(userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile updates the authenticated user's profile fields
// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.UpdateProfile(userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// GetUserByID returns another user's profile
// @Summary View a profile
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.userService.GetUserByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Search filters the alumni directory
// @Summary Search alumni
// @Description Filters active users by name/username, department, company and graduation year. Also returns the distinct facet options for the filter dropdowns.
// @Tags users
// @Produce json
// @Param q query string false "Name or username substring"
// @Param department query string false "Department substring"
// @Param company query string false "Company substring"
// @Param graduation_year query string false "Exact graduation year"
// @Success 200 {object} dto.SearchResponse
// @Router /users/search [get]
func (c *UserController) Search(ctx *gin.Context) {
	var filter dto.SearchFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid search parameters")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	result, err := c.userService.Search(ctx.GetString(middleware.ContextUserID), &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// homeFeedLimit caps each board preview on the public landing feed
const homeFeedLimit = 3

// Home returns the public landing feed: the three newest active jobs and
// the three soonest active events, no login required.
// @Summary Landing feed
// @Tags public
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Router /home [get]
func (c *UserController) Home(ctx *gin.Context) {
	jobs := c.jobService.List()
	if len(jobs) > homeFeedLimit {
		jobs = jobs[:homeFeedLimit]
	}

	events := c.eventService.List()
	if len(events) > homeFeedLimit {
		events = events[:homeFeedLimit]
	}

	ctx.JSON(http.StatusOK, dto.HomeResponse{
		RecentJobs:   jobs,
		RecentEvents: events,
	})
}

// Dashboard returns the user's own activity overview: their postings, their
// events and their five most recent messages.
func (c *UserController) Dashboard(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)

	user, err := c.userService.GetUserByID(userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	messages := c.messageService.Inbox(userID)
	if len(messages) > 5 {
		messages = messages[:5]
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		User:     dto.NewUserResponse(user),
		Jobs:     c.jobService.ListByPoster(userID),
		Events:   c.eventService.ListByOrganizer(userID),
		Messages: messages,
	})
}
