package settle

import "sort"

// Assemble packages balances and transfers into the final report. Balances
// are ordered descending by balance (biggest creditor first), ties broken by
// ascending member ID, so the output is stable across runs. The result owns
// its slices - callers can serialize it without touching engine state.
func Assemble(totalSpent float64, memberCount int, balances map[int64]*Balance, transfers []Transfer) SettlementResult {
	list := make([]Balance, 0, len(balances))
	for _, b := range balances {
		list = append(list, *b)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Balance != list[j].Balance {
			return list[i].Balance > list[j].Balance
		}
		return list[i].MemberID < list[j].MemberID
	})

	var fairShare float64
	if memberCount > 0 {
		fairShare = totalSpent / float64(memberCount)
	}

	out := make([]Transfer, len(transfers))
	copy(out, transfers)

	return SettlementResult{
		TotalSpent:  totalSpent,
		FairShare:   fairShare,
		MemberCount: memberCount,
		Balances:    list,
		Transfers:   out,
	}
}
