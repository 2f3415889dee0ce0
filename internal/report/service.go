package report

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/msaleh/fairsplit/internal/expense"
	"github.com/msaleh/fairsplit/internal/group"
	"github.com/msaleh/fairsplit/internal/payment"
	"github.com/msaleh/fairsplit/internal/settle"
)

// memberLister is the slice of the group service reports need.
type memberLister interface {
	GetMembers(ctx context.Context, groupID int64) ([]*group.GroupMember, error)
}

// expenseLister is the slice of the expense service reports need.
type expenseLister interface {
	ListInScope(ctx context.Context, groupID int64, f expense.Filter) ([]*expense.Expense, error)
}

// paymentLister is the slice of the payment service reports need.
type paymentLister interface {
	ListCompleted(ctx context.Context, groupID int64, from, to *time.Time) ([]*payment.Payment, error)
}

// Service gathers a group's roster, expenses and completed payments and runs
// them through the settlement engine.
type Service struct {
	groups   memberLister
	expenses expenseLister
	payments paymentLister
	log      zerolog.Logger
}

// NewService creates a new report service
func NewService(groups memberLister, expenses expenseLister, payments paymentLister, log zerolog.Logger) *Service {
	return &Service{
		groups:   groups,
		expenses: expenses,
		payments: payments,
		log:      log,
	}
}

// Settlement computes who owes whom in the group over the given window.
// Records that reference users outside the joined roster are dropped with a
// warning rather than failing the whole report; they can only appear after a
// member leaves the group.
func (s *Service) Settlement(ctx context.Context, groupID int64, from, to *time.Time) (*SettlementReport, error) {
	members, err := s.joinedMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	roster := make(map[int64]bool, len(members))
	for _, m := range members {
		roster[m.ID] = true
	}

	expenses, err := s.expenses.ListInScope(ctx, groupID, expense.Filter{From: from, To: to})
	if err != nil {
		return nil, err
	}

	records := make([]settle.ExpenseRecord, 0, len(expenses))
	for _, e := range expenses {
		if !roster[e.PayerID] {
			s.log.Warn().
				Int64("group_id", groupID).
				Int64("expense_id", e.ID).
				Int64("payer_id", e.PayerID).
				Msg("expense payer no longer in roster, excluded from settlement")
			continue
		}
		records = append(records, settle.ExpenseRecord{
			PayerID:    e.PayerID,
			Amount:     e.Amount,
			OccurredAt: e.OccurredAt,
		})
	}

	completed, err := s.payments.ListCompleted(ctx, groupID, from, to)
	if err != nil {
		return nil, err
	}

	settledPayments := make([]settle.CompletedPayment, 0, len(completed))
	for _, p := range completed {
		settledPayments = append(settledPayments, settle.CompletedPayment{
			FromID: p.FromUserID,
			ToID:   p.ToUserID,
			Amount: p.Amount,
		})
	}

	result, err := settle.Settle(members, records, settledPayments, settle.DefaultTolerance)
	if err != nil {
		return nil, err
	}

	for _, skipped := range result.SkippedPayments {
		s.log.Warn().
			Int64("group_id", groupID).
			Int64("from_id", skipped.Payment.FromID).
			Int64("to_id", skipped.Payment.ToID).
			Str("reason", skipped.Reason).
			Msg("completed payment excluded from settlement")
	}

	return &SettlementReport{
		GroupID:          groupID,
		From:             from,
		To:               to,
		GeneratedAt:      time.Now().UTC(),
		SettlementResult: result,
	}, nil
}

// Spending aggregates group expenses by category and by payer.
func (s *Service) Spending(ctx context.Context, groupID int64, f expense.Filter) (*SpendingReport, error) {
	expenses, err := s.expenses.ListInScope(ctx, groupID, f)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]*CategoryTotal)
	byMember := make(map[int64]*MemberTotal)
	var total float64

	for _, e := range expenses {
		total += e.Amount

		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCategory[e.Category] = ct
		}
		ct.Total += e.Amount
		ct.Count++

		mt, ok := byMember[e.PayerID]
		if !ok {
			mt = &MemberTotal{MemberID: e.PayerID, Username: e.PayerUsername}
			byMember[e.PayerID] = mt
		}
		mt.Total += e.Amount
		mt.Count++
	}

	report := &SpendingReport{
		GroupID:      groupID,
		From:         f.From,
		To:           f.To,
		GeneratedAt:  time.Now().UTC(),
		TotalSpent:   total,
		ExpenseCount: len(expenses),
		ByCategory:   make([]CategoryTotal, 0, len(byCategory)),
		ByMember:     make([]MemberTotal, 0, len(byMember)),
	}
	for _, ct := range byCategory {
		report.ByCategory = append(report.ByCategory, *ct)
	}
	for _, mt := range byMember {
		report.ByMember = append(report.ByMember, *mt)
	}

	// Largest buckets first, names break ties so output is stable.
	sort.Slice(report.ByCategory, func(i, j int) bool {
		if report.ByCategory[i].Total != report.ByCategory[j].Total {
			return report.ByCategory[i].Total > report.ByCategory[j].Total
		}
		return report.ByCategory[i].Category < report.ByCategory[j].Category
	})
	sort.Slice(report.ByMember, func(i, j int) bool {
		if report.ByMember[i].Total != report.ByMember[j].Total {
			return report.ByMember[i].Total > report.ByMember[j].Total
		}
		return report.ByMember[i].MemberID < report.ByMember[j].MemberID
	})

	return report, nil
}

// joinedMembers returns the group's joined members as settlement participants.
// Invited members have not accepted yet and owe nothing.
func (s *Service) joinedMembers(ctx context.Context, groupID int64) ([]settle.Member, error) {
	members, err := s.groups.GetMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	participants := make([]settle.Member, 0, len(members))
	for _, m := range members {
		if m.Status != group.MemberStatusJoined {
			continue
		}
		participants = append(participants, settle.Member{
			ID:          m.UserID,
			DisplayName: m.Username,
		})
	}

	return participants, nil
}
