package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/server/http/dto"
	"github.com/polkiloo/webstudio/internal/usecase"
)

// InvoiceHandler manages additional invoice endpoints.
type InvoiceHandler struct {
	facade InvoiceFacade
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade) *InvoiceHandler {
	return &InvoiceHandler{facade: facade}
}

// Create handles POST /api/additional-invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.facade.CreateInvoice(c.Request.Context(), usecase.InvoiceInput{
		OrderID:       req.OrderID,
		Description:   req.Description,
		Amount:        req.Amount.String(),
		InvoiceNumber: req.InvoiceNumber,
	})
	if err != nil {
		switch {
		case respondValidation(c, err):
		case errors.Is(err, domainErrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "order not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to create invoice")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateInvoiceResponse{
		Success:       true,
		InvoiceID:     created.Invoice.ID,
		InvoiceNumber: created.Invoice.InvoiceNumber,
		PaymentURL:    created.PaymentURL,
	})
}

// ListByOrder handles GET /api/additional-invoices/order/:orderId.
func (h *InvoiceHandler) ListByOrder(c *gin.Context) {
	invoices, err := h.facade.Invoices(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load invoices")
		return
	}

	resp := dto.InvoiceListResponse{Success: true, Invoices: make([]dto.InvoiceResponse, 0, len(invoices))}
	for i := range invoices {
		resp.Invoices = append(resp.Invoices, toInvoiceResponse(&invoices[i]))
	}
	c.JSON(http.StatusOK, resp)
}
