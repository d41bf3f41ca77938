package dto

import (
	"encoding/json"
	"time"
)

// CreateOrderRequest is the public order form payload.
type CreateOrderRequest struct {
	Name          string      `json:"name" binding:"required"`
	Email         string      `json:"email" binding:"required,email"`
	Phone         string      `json:"phone" binding:"required"`
	ProjectType   string      `json:"projectType" binding:"required"`
	Description   string      `json:"description"`
	Amount        json.Number `json:"amount" binding:"required"`
	TotalAmount   json.Number `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod" binding:"omitempty,oneof=card invoice"`
	CompanyName   string      `json:"companyName"`
	INN           string      `json:"inn"`
	KPP           string      `json:"kpp"`
	Address       string      `json:"companyAddress"`
}

// CreateOrderResponse is returned after order submission.
type CreateOrderResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"orderId"`
	PaymentURL string `json:"paymentUrl"`
}

// PayRemainingRequest asks for a link to pay the balance.
type PayRemainingRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// PayRemainingResponse carries the signed balance payment link.
type PayRemainingResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"orderId"`
	Amount     string `json:"amount"`
	PaymentURL string `json:"paymentUrl"`
}

// CompanyResponse holds bank invoice requisites.
type CompanyResponse struct {
	Name    string `json:"name"`
	INN     string `json:"inn"`
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
}

// OrderResponse describes an order. Note and DeletedAt are filled for the back office only.
type OrderResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	ProjectType      string           `json:"projectType"`
	Description      string           `json:"description,omitempty"`
	Amount           string           `json:"amount"`
	TotalAmount      string           `json:"totalAmount,omitempty"`
	RemainingAmount  string           `json:"remainingAmount"`
	PaymentMethod    string           `json:"paymentMethod"`
	Company          *CompanyResponse `json:"company,omitempty"`
	Status           string           `json:"status"`
	PaidAt           *time.Time       `json:"paidAt,omitempty"`
	PrepaymentPaidAt *time.Time       `json:"prepaymentPaidAt,omitempty"`
	RemainingPaidAt  *time.Time       `json:"remainingPaidAt,omitempty"`
	Note             string           `json:"note,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	DeletedAt        *time.Time       `json:"deletedAt,omitempty"`
}
