package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalances_EqualShare(t *testing.T) {
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

	balances, err := ComputeBalances(members, expenses)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.InDelta(t, 100.0, balances[1].FairShare, 1e-9)
	assert.InDelta(t, 50.0, balances[1].Balance, 1e-9)
	assert.InDelta(t, 0.0, balances[2].Balance, 1e-9)
	assert.InDelta(t, -50.0, balances[3].Balance, 1e-9)
}

func TestComputeBalances_ZeroSpenderCountsTowardFairShare(t *testing.T) {
	members := []Member{
		{ID: 1, DisplayName: "Alice"},
		{ID: 2, DisplayName: "Bob"},
	}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 200},
	}

	balances, err := ComputeBalances(members, expenses)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, balances[2].Spent, 1e-9)
	assert.InDelta(t, 100.0, balances[2].FairShare, 1e-9)
	assert.InDelta(t, -100.0, balances[2].Balance, 1e-9)
	assert.InDelta(t, 100.0, balances[1].Balance, 1e-9)
}

func TestComputeBalances_EmptyGroup(t *testing.T) {
	_, err := ComputeBalances(nil, []ExpenseRecord{{PayerID: 1, Amount: 10}})
	assert.ErrorIs(t, err, ErrEmptyGroup)
}

func TestComputeBalances_UnknownPayer(t *testing.T) {
	members := []Member{{ID: 1, DisplayName: "Alice"}}
	expenses := []ExpenseRecord{
		{PayerID: 1, Amount: 30},
		{PayerID: 99, Amount: 10},
	}

	_, err := ComputeBalances(members, expenses)
	require.Error(t, err)

	var unknown *UnknownPayerError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, int64(99), unknown.PayerID)

	// Excluding the offending record makes the same call succeed.
	balances, err := ComputeBalances(members, expenses[:1])
	require.NoError(t, err)
	assert.InDelta(t, 0.0, balances[1].Balance, 1e-9)
}

func TestComputeBalances_ZeroSumInvariant(t *testing.T) {
	tests := []struct {
		name     string
		members  []Member
		expenses []ExpenseRecord
	}{
		{
			name:    "uneven spends",
			members: []Member{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}},
			expenses: []ExpenseRecord{
				{PayerID: 1, Amount: 33.33},
				{PayerID: 2, Amount: 99.99},
				{PayerID: 3, Amount: 0.01},
				{PayerID: 1, Amount: 250},
			},
		},
		{
			name:     "no expenses",
			members:  []Member{{ID: 1}, {ID: 2}},
			expenses: nil,
		},
		{
			name:    "single member",
			members: []Member{{ID: 7}},
			expenses: []ExpenseRecord{
				{PayerID: 7, Amount: 42.50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.members, tt.expenses)
			require.NoError(t, err)

			var sum float64
			for _, b := range balances {
				sum += b.Balance
			}
			assert.InDelta(t, 0.0, sum, 1e-6)
		})
	}
}
