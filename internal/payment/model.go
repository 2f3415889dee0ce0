package payment

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// Payment represents a peer-to-peer payment between two group members.
// Only COMPLETED payments count toward settlement; pending and cancelled
// ones are never fed to the engine.
type Payment struct {
	ID           int64         `json:"id"`
	GroupID      int64         `json:"group_id"`
	FromUserID   int64         `json:"from_user_id"` // Who sends the money
	ToUserID     int64         `json:"to_user_id"`   // Who receives it
	Amount       float64       `json:"amount"`
	CurrencyCode string        `json:"currency_code"`
	Note         *string       `json:"note,omitempty"`
	Status       PaymentStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`

	// Populated via JOIN
	FromUsername string `json:"from_username,omitempty"`
	ToUsername   string `json:"to_username,omitempty"`
}
