package expense

import "time"

// CreateExpenseRequest represents the request to log an expense
type CreateExpenseRequest struct {
	GroupID     int64      `json:"group_id" validate:"required"`
	Description string     `json:"description" validate:"required,min=1,max=255"`
	Category    string     `json:"category,omitempty"`
	Amount      float64    `json:"amount" validate:"required,gte=0"`
	Source      string     `json:"source,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"` // defaults to now
}

// UpdateExpenseRequest represents the request to update an expense
type UpdateExpenseRequest struct {
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Category    *string    `json:"category,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID            int64   `json:"id"`
	GroupID       int64   `json:"group_id"`
	PayerID       int64   `json:"payer_id"`
	PayerUsername string  `json:"payer_username,omitempty"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Source        string  `json:"source"`
	ImageURL      *string `json:"image_url,omitempty"`
	OccurredAt    string  `json:"occurred_at"`
	CreatedAt     string  `json:"created_at"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:            e.ID,
		GroupID:       e.GroupID,
		PayerID:       e.PayerID,
		PayerUsername: e.PayerUsername,
		Description:   e.Description,
		Category:      e.Category,
		Amount:        e.Amount,
		Source:        string(e.Source),
		ImageURL:      e.ImageURL,
		OccurredAt:    e.OccurredAt.Format("2006-01-02T15:04:05Z"),
		CreatedAt:     e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
