package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	domainErrors "github.com/polkiloo/webstudio/internal/domain/errors"
	"github.com/polkiloo/webstudio/internal/pkg/robokassa"
)

// PaymentHandler serves gateway result callbacks and client redirects.
type PaymentHandler struct {
	facade  PaymentFacade
	siteURL string
}

// NewPaymentHandler constructs PaymentHandler. Redirects lead to pages under siteURL.
func NewPaymentHandler(facade PaymentFacade, siteURL string) *PaymentHandler {
	return &PaymentHandler{facade: facade, siteURL: strings.TrimRight(siteURL, "/")}
}

// OrderResult handles POST /api/robokassa/result.
func (h *PaymentHandler) OrderResult(c *gin.Context) {
	h.result(c, h.facade.HandleOrderCallback, "order not found")
}

// InvoiceResult handles POST /api/robokassa/additional-invoice.
func (h *PaymentHandler) InvoiceResult(c *gin.Context) {
	h.result(c, h.facade.HandleInvoiceCallback, "invoice not found")
}

// Success handles GET and POST /api/robokassa/success.
func (h *PaymentHandler) Success(c *gin.Context) {
	h.redirect(c, "/payment/success")
}

// Fail handles GET and POST /api/robokassa/fail.
func (h *PaymentHandler) Fail(c *gin.Context) {
	h.redirect(c, "/payment/fail")
}

// The gateway expects plain text bodies, so callbacks never answer with JSON.
func (h *PaymentHandler) result(c *gin.Context, handle func(context.Context, map[string]string) (string, error), notFound string) {
	fields, err := callbackFields(c)
	if err != nil {
		c.String(http.StatusBadRequest, domainErrors.ErrBadSignature.Error())
		return
	}

	ack, err := handle(c.Request.Context(), fields)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrBadSignature):
			c.String(http.StatusBadRequest, domainErrors.ErrBadSignature.Error())
		case errors.Is(err, domainErrors.ErrNotFound):
			c.String(http.StatusNotFound, notFound)
		default:
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}
	c.String(http.StatusOK, ack)
}

func (h *PaymentHandler) redirect(c *gin.Context, page string) {
	target := h.siteURL + page
	fields, _ := callbackFields(c)
	orderID := fields["shp_orderId"]
	if orderID == "" {
		orderID = fields["orderId"]
	}
	if orderID != "" {
		target += "?orderId=" + url.QueryEscape(orderID)
	}
	c.Redirect(http.StatusFound, target)
}

// callbackFields merges query parameters with a form or JSON body.
func callbackFields(c *gin.Context) (map[string]string, error) {
	query := c.Request.URL.Query()
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return robokassa.MergeFields(query, nil), nil
	}

	if c.ContentType() == binding.MIMEJSON {
		body, err := jsonFields(c)
		if err != nil {
			return robokassa.MergeFields(query, nil), err
		}
		return robokassa.MergeFields(query, body), nil
	}

	if err := c.Request.ParseForm(); err != nil {
		return robokassa.MergeFields(query, nil), err
	}
	return robokassa.MergeFields(query, c.Request.PostForm), nil
}

func jsonFields(c *gin.Context) (map[string][]string, error) {
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, err
	}

	fields := make(map[string][]string, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			fields[k] = []string{s}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(v, &n); err == nil {
			fields[k] = []string{n.String()}
		}
	}
	return fields, nil
}
