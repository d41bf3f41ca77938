package dto

// LoginRequest describes back office credentials.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// NoteRequest replaces the internal order note.
type NoteRequest struct {
	Note string `json:"note"`
}

// OrderListQuery filters the back office order list.
type OrderListQuery struct {
	Status         string `form:"status" binding:"omitempty,oneof=pending pending_bank_payment paid completed"`
	IncludeDeleted bool   `form:"includeDeleted"`
	Limit          int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// OrderListResponse wraps orders for the back office.
type OrderListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}
