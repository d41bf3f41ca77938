package handlers

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/domain/model"
	"github.com/polkiloo/webstudio/internal/server/http/dto"
	"github.com/polkiloo/webstudio/internal/server/http/middleware"
)

// CurrentAdmin extracts the authenticated operator login from context.
func CurrentAdmin(c *gin.Context) string {
	return c.GetString(middleware.AdminContextKey)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[lowerFirst(fe.Field())] = ruleMessage(fe)
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: fields})
}

// respondValidation writes a domain validation failure when err is one.
func respondValidation(c *gin.Context, err error) bool {
	var verr *domainErrors.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	return true
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min", "max":
		return "is out of range"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:               order.ID,
		Name:             order.Name,
		Email:            order.Email,
		Phone:            order.Phone,
		ProjectType:      string(order.ProjectType),
		Description:      order.Description,
		Amount:           order.Amount.StringFixed(2),
		RemainingAmount:  order.Remaining().StringFixed(2),
		PaymentMethod:    string(order.PaymentMethod),
		Status:           string(order.Status),
		PaidAt:           order.PaidAt,
		PrepaymentPaidAt: order.PrepaymentPaidAt,
		RemainingPaidAt:  order.RemainingPaidAt,
		CreatedAt:        order.CreatedAt,
	}
	if order.TotalAmount.Valid {
		resp.TotalAmount = order.TotalAmount.Decimal.StringFixed(2)
	}
	if !order.Company.Empty() {
		resp.Company = &dto.CompanyResponse{
			Name:    order.Company.Name,
			INN:     order.Company.INN,
			KPP:     order.Company.KPP,
			Address: order.Company.Address,
		}
	}
	return resp
}

func toAdminOrderResponse(order *model.Order) dto.OrderResponse {
	resp := toOrderResponse(order)
	resp.Note = order.Note
	resp.DeletedAt = order.DeletedAt
	return resp
}

func toInvoiceResponse(inv *model.AdditionalInvoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:            inv.ID,
		OrderID:       inv.OrderID,
		Description:   inv.Description,
		Amount:        inv.Amount.StringFixed(2),
		Status:        string(inv.Status),
		InvID:         inv.InvID,
		InvoiceNumber: inv.InvoiceNumber,
		PaidAt:        inv.PaidAt,
		CreatedAt:     inv.CreatedAt,
	}
}
