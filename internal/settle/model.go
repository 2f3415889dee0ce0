package settle

import "time"

// Member is one participant in a settlement run. IDs only need to be
// unique within the run; DisplayName is carried through to the output.
type Member struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
}

// ExpenseRecord is a single expense as seen by the engine. Amount must be
// non-negative. OccurredAt is informational only - callers filter the set
// before invoking the engine.
type ExpenseRecord struct {
	PayerID    int64     `json:"payer_id"`
	Amount     float64   `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

// CompletedPayment is a peer-to-peer payment that has already happened.
// Callers must exclude pending and cancelled payments before invoking the
// engine. FromID and ToID must differ and Amount must be positive.
type CompletedPayment struct {
	FromID int64   `json:"from_id"`
	ToID   int64   `json:"to_id"`
	Amount float64 `json:"amount"`
}

// Balance is a member's position against the equal-share baseline.
// Positive means the member is owed money, negative means they owe.
type Balance struct {
	MemberID    int64   `json:"member_id"`
	DisplayName string  `json:"display_name"`
	Spent       float64 `json:"spent"`
	FairShare   float64 `json:"fair_share"`
	Balance     float64 `json:"balance"`
}

// Transfer is a proposed payment from a debtor to a creditor. Transfers are
// derived output, never persisted.
type Transfer struct {
	FromID int64   `json:"from_id"`
	From   string  `json:"from"`
	ToID   int64   `json:"to_id"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SkippedPayment records a payment the engine could not apply, so callers
// can surface it instead of dropping data silently.
type SkippedPayment struct {
	Payment CompletedPayment `json:"payment"`
	Reason  string           `json:"reason"`
}

// SettlementResult is the immutable report returned to callers. It holds no
// live map handles and is safe to serialize directly.
type SettlementResult struct {
	TotalSpent      float64          `json:"total_spent"`
	FairShare       float64          `json:"fair_share"`
	MemberCount     int              `json:"member_count"`
	Balances        []Balance        `json:"balances"`
	Transfers       []Transfer       `json:"transfers"`
	SkippedPayments []SkippedPayment `json:"skipped_payments,omitempty"`
}

// Settled reports whether every balance is within tolerance of zero,
// i.e. no transfers are needed.
func (r *SettlementResult) Settled() bool {
	return len(r.Transfers) == 0
}
