package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/msaleh/fairsplit/internal/report"
)

// settlementSource is the slice of the report service the assistant needs.
type settlementSource interface {
	Settlement(ctx context.Context, groupID int64, from, to *time.Time) (*report.SettlementReport, error)
}

// Service turns settlement reports into short human-readable summaries, the
// kind a chat frontend can show verbatim.
type Service struct {
	reports settlementSource
	log     zerolog.Logger
}

// NewService creates a new assistant service
func NewService(reports settlementSource, log zerolog.Logger) *Service {
	return &Service{reports: reports, log: log}
}

// SummaryRequest asks for a settlement summary over an optional time window.
type SummaryRequest struct {
	GroupID int64      `json:"group_id"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

// Summary is one generated settlement summary. InvocationID identifies the
// run in logs so a reported summary can be traced back.
type Summary struct {
	InvocationID string   `json:"invocation_id"`
	GroupID      int64    `json:"group_id"`
	Headline     string   `json:"headline"`
	Lines        []string `json:"lines"`
	Text         string   `json:"text"`
}

// Summarize runs settlement for the group and renders the outcome as text.
func (s *Service) Summarize(ctx context.Context, req *SummaryRequest) (*Summary, error) {
	invocationID := uuid.New().String()

	rep, err := s.reports.Settlement(ctx, req.GroupID, req.From, req.To)
	if err != nil {
		s.log.Error().Err(err).
			Str("invocation_id", invocationID).
			Int64("group_id", req.GroupID).
			Msg("settlement summary failed")
		return nil, err
	}

	summary := &Summary{
		InvocationID: invocationID,
		GroupID:      req.GroupID,
		Headline:     headline(rep),
		Lines:        transferLines(rep),
	}
	summary.Text = renderText(summary)

	s.log.Info().
		Str("invocation_id", invocationID).
		Int64("group_id", req.GroupID).
		Int("transfers", len(rep.Transfers)).
		Msg("settlement summary generated")

	return summary, nil
}

func headline(rep *report.SettlementReport) string {
	if rep.Settled() {
		return "Everyone is settled up."
	}
	return fmt.Sprintf("The group spent %.2f in total (%.2f each). %d transfer(s) will settle everyone up.",
		rep.TotalSpent, rep.FairShare, len(rep.Transfers))
}

func transferLines(rep *report.SettlementReport) []string {
	lines := make([]string, 0, len(rep.Transfers))
	for _, tr := range rep.Transfers {
		from := tr.From
		if from == "" {
			from = fmt.Sprintf("member %d", tr.FromID)
		}
		to := tr.To
		if to == "" {
			to = fmt.Sprintf("member %d", tr.ToID)
		}
		lines = append(lines, fmt.Sprintf("%s pays %s %.2f", from, to, tr.Amount))
	}
	return lines
}

func renderText(s *Summary) string {
	if len(s.Lines) == 0 {
		return s.Headline
	}
	return s.Headline + "\n" + strings.Join(s.Lines, "\n")
}
