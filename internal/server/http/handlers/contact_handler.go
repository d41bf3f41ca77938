package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/server/http/dto"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	facade ContactFacade
}

func NewContactHandler(facade ContactFacade) *ContactHandler {
	return &ContactHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.facade.SubmitContact(c.Request.Context(), usecase.ContactInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case respondValidation(c, err):
		case errors.Is(err, domainErrors.ErrQueueFull):
			respondError(c, http.StatusServiceUnavailable, "service is busy, try again later")
		default:
			respondError(c, http.StatusInternalServerError, "failed to send message")
		}
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
