package settle

import (
	"math"
	"sort"
)

// DefaultTolerance is the threshold below which a balance counts as settled.
// Amounts are float currency units, so exact-zero checks are not reliable.
const DefaultTolerance = 0.01

// Solve proposes transfers that bring every balance to within tolerance of
// zero. It repeatedly matches the largest creditor with the largest debtor
// and settles min(credit, |debt|) between them.
//
// Creditors are processed in descending balance order, debtors in ascending
// order (most negative first); ties fall back to ascending member ID. The
// ordering is part of the contract - it fixes which transfers are proposed
// first and makes the output deterministic.
//
// The greedy pairing keeps the transfer count at or below
// min(#creditors, #debtors) but is a heuristic: finding the provably minimal
// number of transactions is NP-hard in general.
func Solve(balances map[int64]*Balance, tolerance float64) []Transfer {
	var creditors, debtors []*Balance
	for _, b := range balances {
		c := *b
		switch {
		case c.Balance > tolerance:
			creditors = append(creditors, &c)
		case c.Balance < -tolerance:
			debtors = append(debtors, &c)
		}
	}

	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].Balance != creditors[j].Balance {
			return creditors[i].Balance > creditors[j].Balance
		}
		return creditors[i].MemberID < creditors[j].MemberID
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].Balance != debtors[j].Balance {
			return debtors[i].Balance < debtors[j].Balance
		}
		return debtors[i].MemberID < debtors[j].MemberID
	})

	transfers := []Transfer{}
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i]
		creditor := creditors[j]

		amount := math.Min(creditor.Balance, -debtor.Balance)
		if amount > tolerance {
			transfers = append(transfers, Transfer{
				FromID: debtor.MemberID,
				From:   debtor.DisplayName,
				ToID:   creditor.MemberID,
				To:     creditor.DisplayName,
				Amount: amount,
			})
		}

		debtor.Balance += amount
		creditor.Balance -= amount

		if -debtor.Balance <= tolerance {
			i++
		}
		if creditor.Balance <= tolerance {
			j++
		}
	}

	return transfers
}
