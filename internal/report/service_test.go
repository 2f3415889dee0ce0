package report

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msaleh/fairsplit/internal/expense"
	"github.com/msaleh/fairsplit/internal/group"
	"github.com/msaleh/fairsplit/internal/payment"
)

type fakeGroups struct {
	members []*group.GroupMember
}

func (f *fakeGroups) GetMembers(_ context.Context, _ int64) ([]*group.GroupMember, error) {
	return f.members, nil
}

type fakeExpenses struct {
	expenses []*expense.Expense
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (f *fakeExpenses) ListInScope(_ context.Context, _ int64, filter expense.Filter) ([]*expense.Expense, error) {
	f.gotFrom = filter.From
	f.gotTo = filter.To
	return f.expenses, nil
}

type fakePayments struct {
	payments []*payment.Payment
}

func (f *fakePayments) ListCompleted(_ context.Context, _ int64, _, _ *time.Time) ([]*payment.Payment, error) {
	return f.payments, nil
}

func newTestService(groups *fakeGroups, expenses *fakeExpenses, payments *fakePayments) *Service {
	return NewService(groups, expenses, payments, zerolog.Nop())
}

func joined(userID int64, name string) *group.GroupMember {
	return &group.GroupMember{UserID: userID, Username: name, Status: group.MemberStatusJoined}
}

func TestSettlement_ThreeMemberGroup(t *testing.T) {
	groups := &fakeGroups{members: []*group.GroupMember{
		joined(1, "alice"),
		joined(2, "bob"),
		joined(3, "carol"),
	}}
	expenses := &fakeExpenses{expenses: []*expense.Expense{
		{ID: 10, PayerID: 1, Amount: 150},
		{ID: 11, PayerID: 2, Amount: 100},
		{ID: 12, PayerID: 3, Amount: 50},
	}}
	payments := &fakePayments{}

	svc := newTestService(groups, expenses, payments)

	report, err := svc.Settlement(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.GroupID)
	assert.InDelta(t, 300.0, report.TotalSpent, 1e-9)
	require.Len(t, report.Transfers, 1)
	assert.Equal(t, "carol", report.Transfers[0].From)
	assert.Equal(t, "alice", report.Transfers[0].To)
	assert.InDelta(t, 50.0, report.Transfers[0].Amount, 1e-9)
}

func TestSettlement_InvitedMembersExcluded(t *testing.T) {
	groups := &fakeGroups{members: []*group.GroupMember{
		joined(1, "alice"),
		joined(2, "bob"),
		{UserID: 3, Username: "carol", Status: group.MemberStatusInvited},
	}}
	expenses := &fakeExpenses{expenses: []*expense.Expense{
		{ID: 10, PayerID: 1, Amount: 100},
	}}
	payments := &fakePayments{}

	svc := newTestService(groups, expenses, payments)

	report, err := svc.Settlement(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	// Only the two joined members split the cost.
	assert.Equal(t, 2, report.MemberCount)
	assert.InDelta(t, 50.0, report.FairShare, 1e-9)
}

func TestSettlement_DepartedPayerExcludedWithoutFailing(t *testing.T) {
	groups := &fakeGroups{members: []*group.GroupMember{
		joined(1, "alice"),
		joined(2, "bob"),
	}}
	expenses := &fakeExpenses{expenses: []*expense.Expense{
		{ID: 10, PayerID: 1, Amount: 100},
		{ID: 11, PayerID: 99, Amount: 40}, // payer left the group
	}}
	payments := &fakePayments{}

	svc := newTestService(groups, expenses, payments)

	report, err := svc.Settlement(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, report.TotalSpent, 1e-9)
	require.Len(t, report.Transfers, 1)
	assert.InDelta(t, 50.0, report.Transfers[0].Amount, 1e-9)
}

func TestSettlement_CompletedPaymentsFoldedIn(t *testing.T) {
	groups := &fakeGroups{members: []*group.GroupMember{
		joined(1, "alice"),
		joined(2, "bob"),
	}}
	expenses := &fakeExpenses{expenses: []*expense.Expense{
		{ID: 10, PayerID: 1, Amount: 200},
	}}
	payments := &fakePayments{payments: []*payment.Payment{
		{FromUserID: 2, ToUserID: 1, Amount: 100, Status: payment.PaymentStatusCompleted},
	}}

	svc := newTestService(groups, expenses, payments)

	report, err := svc.Settlement(context.Background(), 7, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, report.Transfers)
	assert.True(t, report.Settled())
}

func TestSettlement_WindowForwardedToExpenseQuery(t *testing.T) {
	groups := &fakeGroups{members: []*group.GroupMember{joined(1, "alice")}}
	expenses := &fakeExpenses{}
	payments := &fakePayments{}

	svc := newTestService(groups, expenses, payments)

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Settlement(context.Background(), 7, &from, &to)
	require.NoError(t, err)

	require.NotNil(t, expenses.gotFrom)
	require.NotNil(t, expenses.gotTo)
	assert.True(t, expenses.gotFrom.Equal(from))
	assert.True(t, expenses.gotTo.Equal(to))
}

func TestSpending_AggregatesByCategoryAndMember(t *testing.T) {
	expenses := &fakeExpenses{expenses: []*expense.Expense{
		{PayerID: 1, PayerUsername: "alice", Category: "food", Amount: 30},
		{PayerID: 1, PayerUsername: "alice", Category: "travel", Amount: 120},
		{PayerID: 2, PayerUsername: "bob", Category: "food", Amount: 20},
	}}

	svc := newTestService(&fakeGroups{}, expenses, &fakePayments{})

	report, err := svc.Spending(context.Background(), 7, expense.Filter{})
	require.NoError(t, err)

	assert.InDelta(t, 170.0, report.TotalSpent, 1e-9)
	assert.Equal(t, 3, report.ExpenseCount)

	require.Len(t, report.ByCategory, 2)
	assert.Equal(t, "travel", report.ByCategory[0].Category)
	assert.InDelta(t, 120.0, report.ByCategory[0].Total, 1e-9)
	assert.Equal(t, "food", report.ByCategory[1].Category)
	assert.InDelta(t, 50.0, report.ByCategory[1].Total, 1e-9)
	assert.Equal(t, 2, report.ByCategory[1].Count)

	require.Len(t, report.ByMember, 2)
	assert.Equal(t, int64(1), report.ByMember[0].MemberID)
	assert.InDelta(t, 150.0, report.ByMember[0].Total, 1e-9)
	assert.Equal(t, "bob", report.ByMember[1].Username)
}

func TestSpending_EmptyGroupIsEmptyReport(t *testing.T) {
	svc := newTestService(&fakeGroups{}, &fakeExpenses{}, &fakePayments{})

	report, err := svc.Spending(context.Background(), 7, expense.Filter{})
	require.NoError(t, err)

	assert.Zero(t, report.TotalSpent)
	assert.Empty(t, report.ByCategory)
	assert.Empty(t, report.ByMember)
}
