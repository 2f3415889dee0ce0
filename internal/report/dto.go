package report

import (
	"time"

	"github.com/msaleh/fairsplit/internal/settle"
)

// SettlementReport is the settlement state of a group over a time window,
// ready to render as a balance chart plus a transfer list.
type SettlementReport struct {
	GroupID     int64      `json:"group_id"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`

	settle.SettlementResult
}

// CategoryTotal is the total spent in one expense category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MemberTotal is the total spent by one member.
type MemberTotal struct {
	MemberID int64   `json:"member_id"`
	Username string  `json:"username,omitempty"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// SpendingReport aggregates group spending by category and by member.
type SpendingReport struct {
	GroupID     int64      `json:"group_id"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	GeneratedAt time.Time  `json:"generated_at"`

	TotalSpent   float64         `json:"total_spent"`
	ExpenseCount int             `json:"expense_count"`
	ByCategory   []CategoryTotal `json:"by_category"`
	ByMember     []MemberTotal   `json:"by_member"`
}
