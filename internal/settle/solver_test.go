package settle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancesFrom(amounts map[int64]float64) map[int64]*Balance {
	out := make(map[int64]*Balance, len(amounts))
	for id, amt := range amounts {
		out[id] = &Balance{MemberID: id, Balance: amt}
	}
	return out
}

// replay applies transfers back onto the balances and checks everything
// lands within tolerance of zero.
func replay(t *testing.T, balances map[int64]*Balance, transfers []Transfer, tolerance float64) {
	t.Helper()

	remaining := make(map[int64]float64, len(balances))
	for id, b := range balances {
		remaining[id] = b.Balance
	}
	for _, tr := range transfers {
		assert.NotEqual(t, tr.FromID, tr.ToID, "self-transfer emitted")
		assert.Greater(t, tr.Amount, tolerance)
		remaining[tr.FromID] += tr.Amount
		remaining[tr.ToID] -= tr.Amount
	}
	for id, amt := range remaining {
		assert.LessOrEqualf(t, math.Abs(amt), tolerance, "member %d not settled: %f", id, amt)
	}
}

func TestSolve_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		balances map[int64]float64
		want     []Transfer
	}{
		{
			name:     "single debtor single creditor",
			balances: map[int64]float64{1: 50, 2: 0, 3: -50},
			want: []Transfer{
				{FromID: 3, ToID: 1, Amount: 50},
			},
		},
		{
			name:     "already balanced",
			balances: map[int64]float64{1: 0, 2: 0, 3: 0, 4: 0},
			want:     []Transfer{},
		},
		{
			name:     "within tolerance counts as balanced",
			balances: map[int64]float64{1: 0.005, 2: -0.005},
			want:     []Transfer{},
		},
		{
			name:     "one debtor pays two creditors",
			balances: map[int64]float64{1: 60, 2: 40, 3: -100},
			want: []Transfer{
				{FromID: 3, ToID: 1, Amount: 60},
				{FromID: 3, ToID: 2, Amount: 40},
			},
		},
		{
			name:     "largest pair matched first",
			balances: map[int64]float64{1: 70, 2: 30, 3: -80, 4: -20},
			want: []Transfer{
				{FromID: 3, ToID: 1, Amount: 70},
				{FromID: 3, ToID: 2, Amount: 10},
				{FromID: 4, ToID: 2, Amount: 20},
			},
		},
		{
			name:     "equal balances tie-break by member id",
			balances: map[int64]float64{5: 25, 2: 25, 9: -25, 4: -25},
			want: []Transfer{
				{FromID: 4, ToID: 2, Amount: 25},
				{FromID: 9, ToID: 5, Amount: 25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := balancesFrom(tt.balances)
			transfers := Solve(balances, DefaultTolerance)

			require.Len(t, transfers, len(tt.want))
			for i, want := range tt.want {
				assert.Equal(t, want.FromID, transfers[i].FromID)
				assert.Equal(t, want.ToID, transfers[i].ToID)
				assert.InDelta(t, want.Amount, transfers[i].Amount, 1e-9)
			}

			replay(t, balances, transfers, DefaultTolerance)
		})
	}
}

func TestSolve_Deterministic(t *testing.T) {
	amounts := map[int64]float64{1: 33.34, 2: 33.33, 3: -22.22, 4: -22.22, 5: -22.23}

	first := Solve(balancesFrom(amounts), DefaultTolerance)
	for i := 0; i < 10; i++ {
		again := Solve(balancesFrom(amounts), DefaultTolerance)
		require.Equal(t, first, again)
	}
}

func TestSolve_DoesNotMutateInput(t *testing.T) {
	balances := balancesFrom(map[int64]float64{1: 50, 2: -50})
	_ = Solve(balances, DefaultTolerance)

	assert.InDelta(t, 50.0, balances[1].Balance, 1e-9)
	assert.InDelta(t, -50.0, balances[2].Balance, 1e-9)
}

func TestSolve_TransferCountBounded(t *testing.T) {
	balances := balancesFrom(map[int64]float64{
		1: 10, 2: 20, 3: 30, 4: -15, 5: -25, 6: -20,
	})
	transfers := Solve(balances, DefaultTolerance)

	// Heuristic bound: never more than creditors + debtors - 1.
	assert.LessOrEqual(t, len(transfers), 5)
	replay(t, balances, transfers, DefaultTolerance)
}

func TestSolve_FloatingPointResidue(t *testing.T) {
	balances := balancesFrom(map[int64]float64{1: 1e-16, 2: -1e-16})
	assert.Empty(t, Solve(balances, DefaultTolerance))
}
