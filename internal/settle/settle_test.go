package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle_ThreeWayTrip(t *testing.T) {
	members := []Member{
		{ID: 1, DisplayName: "Alice"},
		{ID: 2, DisplayName: "Bob"},
		{ID: 3, DisplayName: "Carol"},
	}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 150},
		{PayerID: 2, Amount: 100},
		{PayerID: 3, Amount: 50},
	}

	result, err := Settle(members, expenses, nil, DefaultTolerance)
	require.NoError(t, err)

	assert.InDelta(t, 300.0, result.TotalSpent, 1e-9)
	assert.InDelta(t, 100.0, result.FairShare, 1e-9)
	assert.Equal(t, 3, result.MemberCount)

	require.Len(t, result.Transfers, 1)
	assert.Equal(t, "Carol", result.Transfers[0].From)
	assert.Equal(t, "Alice", result.Transfers[0].To)
	assert.InDelta(t, 50.0, result.Transfers[0].Amount, 1e-9)
	assert.False(t, result.Settled())
}

func TestSettle_CompletedPaymentReducesTransfer(t *testing.T) {
	members := []Member{
		{ID: 1, DisplayName: "Alice"},
		{ID: 2, DisplayName: "Bob"},
	}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 200},
	}
	payments := []CompletedPayment{
		{FromID: 2, ToID: 1, Amount: 50},
	}

	result, err := Settle(members, expenses, payments, DefaultTolerance)
	require.NoError(t, err)

	require.Len(t, result.Transfers, 1)
	assert.Equal(t, int64(2), result.Transfers[0].FromID)
	assert.Equal(t, int64(1), result.Transfers[0].ToID)
	assert.InDelta(t, 50.0, result.Transfers[0].Amount, 1e-9)
}

func TestSettle_EveryoneAtFairShare(t *testing.T) {
	members := []Member{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 25},
		{PayerID: 2, Amount: 25},
		{PayerID: 3, Amount: 25},
		{PayerID: 4, Amount: 25},
	}

	result, err := Settle(members, expenses, nil, DefaultTolerance)
	require.NoError(t, err)

	assert.Empty(t, result.Transfers)
	assert.True(t, result.Settled())
}

func TestSettle_EmptyGroup(t *testing.T) {
	_, err := Settle(nil, nil, nil, DefaultTolerance)
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestSettle_SkippedPaymentsReported(t *testing.T) {
	members := []Member{
		{ID: 1, DisplayName: "Alice"},
		{ID: 2, DisplayName: "Bob"},
	}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 100},
	}
	payments := []CompletedPayment{
		{FromID: 42, ToID: 1, Amount: 10},
		{FromID: 2, ToID: 1, Amount: 25},
	}

	result, err := Settle(members, expenses, payments, DefaultTolerance)
	require.NoError(t, err)

	require.Len(t, result.SkippedPayments, 1)
	assert.Equal(t, int64(42), result.SkippedPayments[0].Payment.FromID)

	require.Len(t, result.Transfers, 1)
	assert.InDelta(t, 25.0, result.Transfers[0].Amount, 1e-9)
}

func TestAssemble_OrdersBalancesCreditorsFirst(t *testing.T) {
	balances := map[int64]*Balance{
		1: {MemberID: 1, Balance: -30},
		2: {MemberID: 2, Balance: 50},
		3: {MemberID: 3, Balance: -20},
		4: {MemberID: 4, Balance: 0},
	}

	result := Assemble(200, 4, balances, nil)

	require.Len(t, result.Balances, 4)
	assert.Equal(t, int64(2), result.Balances[0].MemberID)
	assert.Equal(t, int64(4), result.Balances[1].MemberID)
	assert.Equal(t, int64(3), result.Balances[2].MemberID)
	assert.Equal(t, int64(1), result.Balances[3].MemberID)
	assert.InDelta(t, 50.0, result.FairShare, 1e-9)
}

func TestAssemble_ResultIsDetachedFromInputs(t *testing.T) {
	balances := map[int64]*Balance{
		1: {MemberID: 1, Balance: 10},
	}
	transfers := []Transfer{{FromID: 2, ToID: 1, Amount: 10}}

	result := Assemble(10, 1, balances, transfers)

	balances[1].Balance = 999
	transfers[0].Amount = 999

	assert.InDelta(t, 10.0, result.Balances[0].Balance, 1e-9)
	assert.InDelta(t, 10.0, result.Transfers[0].Amount, 1e-9)
}
