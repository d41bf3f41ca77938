package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/server/http/dto"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// OrderHandler manages public order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.facade.CreateOrder(c.Request.Context(), usecase.OrderInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		ProjectType:   model.ProjectType(strings.ToLower(strings.TrimSpace(req.ProjectType))),
		Description:   req.Description,
		Amount:        req.Amount.String(),
		TotalAmount:   req.TotalAmount.String(),
		PaymentMethod: model.PaymentMethod(req.PaymentMethod),
		Company: model.CompanyDetails{
			Name:    req.CompanyName,
			INN:     req.INN,
			KPP:     req.KPP,
			Address: req.Address,
		},
	})
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create order")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Success:    true,
		OrderID:    created.Order.ID,
		PaymentURL: created.PaymentURL,
	})
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load order")
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// PayRemaining handles POST /api/orders/pay-remaining.
func (h *OrderHandler) PayRemaining(c *gin.Context) {
	var req dto.PayRemainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payment, err := h.facade.PayRemaining(c.Request.Context(), strings.TrimSpace(req.OrderID))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "order not found")
		case errors.Is(err, domainErrors.ErrFullyPaid),
			errors.Is(err, domainErrors.ErrPrepaymentNotConfirmed),
			errors.Is(err, domainErrors.ErrRemainingNotAvailable):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "failed to create payment link")
		}
		return
	}

	c.JSON(http.StatusOK, dto.PayRemainingResponse{
		Success:    true,
		OrderID:    payment.OrderID,
		Amount:     payment.Amount.StringFixed(2),
		PaymentURL: payment.PaymentURL,
	})
}
