package settle

// ComputeBalances calculates each member's position against the equal-share
// baseline:
//
//   - spent     = sum of expense amounts the member paid
//   - fairShare = totalSpent / memberCount
//   - balance   = spent - fairShare
//
// Members with no expenses get spent = 0 but still count toward the fair
// share. The returned balances sum to zero (within floating tolerance) by
// construction.
//
// Returns ErrEmptyGroup when members is empty and *UnknownPayerError when an
// expense references a payer outside the roster. The computation is pure:
// inputs are never mutated.
func ComputeBalances(members []Member, expenses []ExpenseRecord) (map[int64]*Balance, error) {
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}

	balances := make(map[int64]*Balance, len(members))
	for _, m := range members {
		balances[m.ID] = &Balance{
			MemberID:    m.ID,
			DisplayName: m.DisplayName,
		}
	}

	var totalSpent float64
	for _, e := range expenses {
		b, ok := balances[e.PayerID]
		if !ok {
			return nil, &UnknownPayerError{PayerID: e.PayerID}
		}
		b.Spent += e.Amount
		totalSpent += e.Amount
	}

	fairShare := totalSpent / float64(len(members))
	for _, b := range balances {
		b.FairShare = fairShare
		b.Balance = b.Spent - fairShare
	}

	return balances, nil
}
