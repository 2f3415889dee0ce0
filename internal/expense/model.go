package expense

import "time"

// ExpenseSource records how the expense entered the system.
type ExpenseSource string

const (
	SourceManual  ExpenseSource = "MANUAL"
	SourceChat    ExpenseSource = "CHAT"
	SourceInvoice ExpenseSource = "INVOICE"
)

// Expense represents an expense paid by one member on behalf of the group.
// Shares are always equal across the group roster; the settlement engine
// derives who owes whom from the full expense set, so no per-expense split
// rows exist.
type Expense struct {
	ID          int64         `json:"id"`
	GroupID     int64         `json:"group_id"`
	PayerID     int64         `json:"payer_id"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Amount      float64       `json:"amount"`
	Source      ExpenseSource `json:"source"`
	ImageURL    *string       `json:"image_url,omitempty"`
	OccurredAt  time.Time     `json:"occurred_at"`
	CreatedAt   time.Time     `json:"created_at"`

	// Populated via JOIN
	PayerUsername string `json:"payer_username,omitempty"`
}

// Filter narrows the expense set for reports and listings. Zero values mean
// "no constraint".
type Filter struct {
	From     *time.Time
	To       *time.Time
	Category string
	PayerID  int64
}
