package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// EventController handles event board operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns the active events, upcoming first
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.eventService.List())
}

// Create posts a new event
// @Summary Post an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details; date in YYYY-MM-DD"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Router /events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	event, err := c.eventService.Create(ctx.GetString(middleware.ContextUserID), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// GetByID returns a single event
func (c *EventController) GetByID(ctx *gin.Context) {
	event, err := c.eventService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}
