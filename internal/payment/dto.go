package payment

// CreatePaymentRequest represents the request to record a payment
type CreatePaymentRequest struct {
	GroupID  int64   `json:"group_id" validate:"required"`
	ToUserID int64   `json:"to_user_id" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Note     *string `json:"note,omitempty"`
}

// PaymentResponse represents the response for a payment
type PaymentResponse struct {
	ID           int64         `json:"id"`
	GroupID      int64         `json:"group_id"`
	FromUserID   int64         `json:"from_user_id"`
	FromUsername string        `json:"from_username,omitempty"`
	ToUserID     int64         `json:"to_user_id"`
	ToUsername   string        `json:"to_username,omitempty"`
	Amount       float64       `json:"amount"`
	CurrencyCode string        `json:"currency_code"`
	Note         *string       `json:"note,omitempty"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    string        `json:"created_at"`
	CompletedAt  string        `json:"completed_at,omitempty"`
}

// ToResponse converts a Payment model to a PaymentResponse DTO
func (p *Payment) ToResponse() *PaymentResponse {
	resp := &PaymentResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		FromUserID:   p.FromUserID,
		FromUsername: p.FromUsername,
		ToUserID:     p.ToUserID,
		ToUsername:   p.ToUsername,
		Amount:       p.Amount,
		CurrencyCode: p.CurrencyCode,
		Note:         p.Note,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if p.CompletedAt != nil {
		resp.CompletedAt = p.CompletedAt.Format("2006-01-02T15:04:05Z")
	}
	return resp
}
