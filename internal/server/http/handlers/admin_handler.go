package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/domain/repository"
	"github.com/polkiloo/webstudio/internal/server/http/dto"
	"github.com/polkiloo/webstudio/internal/server/http/middleware"
)

const defaultAdminListLimit = 100

// AdminHandler serves the back office.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	token, err := h.facade.AdminLogin(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Token: token})
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	var query dto.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	if query.Limit == 0 {
		query.Limit = defaultAdminListLimit
	}

	orders, err := h.facade.AdminOrders(c.Request.Context(), repository.OrderFilter{
		Status:         model.OrderStatus(query.Status),
		IncludeDeleted: query.IncludeDeleted,
		Limit:          query.Limit,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load orders")
		return
	}

	resp := dto.OrderListResponse{Success: true, Orders: make([]dto.OrderResponse, 0, len(orders))}
	for i := range orders {
		resp.Orders = append(resp.Orders, toAdminOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// SetNote handles PATCH /api/admin/orders/:id/note.
func (h *AdminHandler) SetNote(c *gin.Context) {
	var req dto.NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	order, err := h.facade.SetOrderNote(c.Request.Context(), c.Param("id"), req.Note)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update order")
		return
	}
	c.JSON(http.StatusOK, toAdminOrderResponse(order))
}

// Delete handles DELETE /api/admin/orders/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete order")
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
