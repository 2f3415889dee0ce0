package assistant

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msaleh/fairsplit/internal/report"
	"github.com/msaleh/fairsplit/internal/settle"
)

type fakeReports struct {
	report *report.SettlementReport
	err    error
}

func (f *fakeReports) Settlement(_ context.Context, _ int64, _, _ *time.Time) (*report.SettlementReport, error) {
	return f.report, f.err
}

func TestSummarize_WithTransfers(t *testing.T) {
	reports := &fakeReports{report: &report.SettlementReport{
		GroupID: 7,
		SettlementResult: settle.SettlementResult{
			TotalSpent:  300,
			FairShare:   100,
			MemberCount: 3,
			Transfers: []settle.Transfer{
				{FromID: 3, From: "carol", ToID: 1, To: "alice", Amount: 50},
			},
		},
	}}

	svc := NewService(reports, zerolog.Nop())

	summary, err := svc.Summarize(context.Background(), &SummaryRequest{GroupID: 7})
	require.NoError(t, err)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "carol pays alice 50.00", summary.Lines[0])
	assert.Contains(t, summary.Headline, "300.00")
	assert.Contains(t, summary.Text, "carol pays alice 50.00")

	_, err = uuid.Parse(summary.InvocationID)
	assert.NoError(t, err)
}

func TestSummarize_SettledGroup(t *testing.T) {
	reports := &fakeReports{report: &report.SettlementReport{
		GroupID: 7,
		SettlementResult: settle.SettlementResult{
			TotalSpent:  90,
			FairShare:   30,
			MemberCount: 3,
		},
	}}

	svc := NewService(reports, zerolog.Nop())

	summary, err := svc.Summarize(context.Background(), &SummaryRequest{GroupID: 7})
	require.NoError(t, err)

	assert.Equal(t, "Everyone is settled up.", summary.Headline)
	assert.Empty(t, summary.Lines)
	assert.Equal(t, summary.Headline, summary.Text)
}

func TestSummarize_FallsBackToMemberIDs(t *testing.T) {
	reports := &fakeReports{report: &report.SettlementReport{
		GroupID: 7,
		SettlementResult: settle.SettlementResult{
			TotalSpent:  100,
			FairShare:   50,
			MemberCount: 2,
			Transfers: []settle.Transfer{
				{FromID: 2, ToID: 1, Amount: 50},
			},
		},
	}}

	svc := NewService(reports, zerolog.Nop())

	summary, err := svc.Summarize(context.Background(), &SummaryRequest{GroupID: 7})
	require.NoError(t, err)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "member 2 pays member 1 50.00", summary.Lines[0])
}

func TestSummarize_PropagatesEngineError(t *testing.T) {
	reports := &fakeReports{err: settle.ErrEmptyGroup}

	svc := NewService(reports, zerolog.Nop())

	_, err := svc.Summarize(context.Background(), &SummaryRequest{GroupID: 7})
	assert.ErrorIs(t, err, settle.ErrEmptyGroup)
}
