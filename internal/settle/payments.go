package settle

// ApplyCompletedPayments folds already-completed peer-to-peer payments into
// the balances: the payer's balance rises by the full amount (they already
// paid down their share), the payee's falls by the same amount. Amounts are
// applied as-is, with no clamping against outstanding need - an overpaying
// debtor flips to creditor.
//
// The input map is never mutated; an adjusted copy is returned. Payments
// referencing a member outside the balances map are skipped and reported,
// so one malformed payment never blocks settlement for the rest of the
// group. Application order does not affect the outcome.
func ApplyCompletedPayments(balances map[int64]*Balance, payments []CompletedPayment) (map[int64]*Balance, []SkippedPayment) {
	adjusted := make(map[int64]*Balance, len(balances))
	for id, b := range balances {
		c := *b
		adjusted[id] = &c
	}

	var skipped []SkippedPayment
	for _, p := range payments {
		from, ok := adjusted[p.FromID]
		if !ok {
			err := &UnknownMemberError{MemberID: p.FromID}
			skipped = append(skipped, SkippedPayment{Payment: p, Reason: err.Error()})
			continue
		}
		to, ok := adjusted[p.ToID]
		if !ok {
			err := &UnknownMemberError{MemberID: p.ToID}
			skipped = append(skipped, SkippedPayment{Payment: p, Reason: err.Error()})
			continue
		}

		from.Balance += p.Amount
		to.Balance -= p.Amount
	}

	return adjusted, skipped
}
