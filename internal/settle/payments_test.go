package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBalances() map[int64]*Balance {
	return map[int64]*Balance{
		1: {MemberID: 1, DisplayName: "Alice", Spent: 200, FairShare: 100, Balance: 100},
		2: {MemberID: 2, DisplayName: "Bob", Spent: 0, FairShare: 100, Balance: -100},
	}
}

func TestApplyCompletedPayments_AdjustsBothSides(t *testing.T) {
	payments := []CompletedPayment{
		{FromID: 2, ToID: 1, Amount: 50},
	}

	adjusted, skipped := ApplyCompletedPayments(testBalances(), payments)
	require.Empty(t, skipped)

	assert.InDelta(t, 50.0, adjusted[1].Balance, 1e-9)
	assert.InDelta(t, -50.0, adjusted[2].Balance, 1e-9)
}

func TestApplyCompletedPayments_DoesNotMutateInput(t *testing.T) {
	input := testBalances()
	_, _ = ApplyCompletedPayments(input, []CompletedPayment{
		{FromID: 2, ToID: 1, Amount: 50},
	})

	assert.InDelta(t, 100.0, input[1].Balance, 1e-9)
	assert.InDelta(t, -100.0, input[2].Balance, 1e-9)
}

func TestApplyCompletedPayments_SkipsUnknownMembers(t *testing.T) {
	payments := []CompletedPayment{
		{FromID: 9, ToID: 1, Amount: 10},
		{FromID: 2, ToID: 8, Amount: 20},
		{FromID: 2, ToID: 1, Amount: 30},
	}

	adjusted, skipped := ApplyCompletedPayments(testBalances(), payments)

	require.Len(t, skipped, 2)
	assert.Equal(t, int64(9), skipped[0].Payment.FromID)
	assert.Equal(t, int64(8), skipped[1].Payment.ToID)
	assert.NotEmpty(t, skipped[0].Reason)

	// The valid payment still went through.
	assert.InDelta(t, 70.0, adjusted[1].Balance, 1e-9)
	assert.InDelta(t, -70.0, adjusted[2].Balance, 1e-9)
}

func TestApplyCompletedPayments_OrderIndependent(t *testing.T) {
	payments := []CompletedPayment{
		{FromID: 2, ToID: 1, Amount: 10},
		{FromID: 2, ToID: 1, Amount: 25.25},
		{FromID: 1, ToID: 2, Amount: 5.50},
	}
	permutations := [][]int{
		{0, 1, 2},
		{0, 2, 1},
		{1, 0, 2},
		{1, 2, 0},
		{2, 0, 1},
		{2, 1, 0},
	}

	reference, _ := ApplyCompletedPayments(testBalances(), payments)

	for _, perm := range permutations {
		shuffled := make([]CompletedPayment, len(payments))
		for i, idx := range perm {
			shuffled[i] = payments[idx]
		}

		adjusted, _ := ApplyCompletedPayments(testBalances(), shuffled)
		for id, want := range reference {
			assert.InDelta(t, want.Balance, adjusted[id].Balance, 1e-9)
		}
	}
}

func TestApplyCompletedPayments_OverpaymentFlipsSign(t *testing.T) {
	// A payment larger than the outstanding debt is applied in full; the
	// debtor becomes a creditor. Observed behavior, intentionally unclamped.
	adjusted, skipped := ApplyCompletedPayments(testBalances(), []CompletedPayment{
		{FromID: 2, ToID: 1, Amount: 150},
	})
	require.Empty(t, skipped)

	assert.InDelta(t, -50.0, adjusted[1].Balance, 1e-9)
	assert.InDelta(t, 50.0, adjusted[2].Balance, 1e-9)
}
