package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumnihub/internal/app/models/dto"
	"github.com/yigit/alumnihub/internal/app/services"
	"github.com/yigit/alumnihub/internal/middleware"
)

// MessageController handles direct messaging operations
type MessageController struct {
	messageService services.MessageService
	logger         zerolog.Logger
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService, logger zerolog.Logger) *MessageController {
	return &MessageController{
		messageService: messageService,
		logger:         logger,
	}
}

// Inbox returns every message the user sent or received, newest first
// @Summary List own messages
// @Tags messages
// @Produce json
// @Success 200 {array} dto.MessageResponse
// @Router /messages [get]
func (c *MessageController) Inbox(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.messageService.Inbox(ctx.GetString(middleware.ContextUserID)))
}

// Send creates a new message
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.messageService.Send(ctx.GetString(middleware.ContextUserID), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, message)
}

// GetByID returns a single message. Viewing as the receiver marks it read.
// @Summary View a message
// @Tags messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse "Not a party to the message"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Router /messages/{id} [get]
func (c *MessageController) GetByID(ctx *gin.Context) {
	message, err := c.messageService.GetByID(ctx.Param("id"), ctx.GetString(middleware.ContextUserID))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, message)
}
