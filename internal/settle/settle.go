// Package settle computes how a group should settle its shared expenses.
//
// Given a member roster, the expenses in scope and the peer-to-peer payments
// already completed, it derives each member's balance against an equal-share
// baseline and proposes a small set of transfers that zeroes everything out.
// The engine is pure: no I/O, no shared state, safe to call from concurrent
// requests. Storage, filtering and presentation belong to the callers.
package settle

// Settle is the canonical composition of the engine: compute balances, fold
// in completed payments, solve, assemble. Both the reporting and the
// assistant paths go through here so the two can never drift apart.
//
// Payments that reference unknown members are skipped and reported on the
// result; an unknown expense payer fails the whole call with
// *UnknownPayerError so the caller can decide whether to exclude the record
// and retry.
func Settle(members []Member, expenses []ExpenseRecord, payments []CompletedPayment, tolerance float64) (SettlementResult, error) {
	balances, err := ComputeBalances(members, expenses)
	if err != nil {
		return SettlementResult{}, err
	}

	var totalSpent float64
	for _, e := range expenses {
		totalSpent += e.Amount
	}

	adjusted, skipped := ApplyCompletedPayments(balances, payments)
	transfers := Solve(adjusted, tolerance)

	result := Assemble(totalSpent, len(members), adjusted, transfers)
	result.SkippedPayments = skipped
	return result, nil
}
