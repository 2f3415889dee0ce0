package payment

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/msaleh/fairsplit/pkg/money"
)

// Common errors
var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrCannotPaySelf       = errors.New("cannot record a payment to yourself")
	ErrInvalidAmount       = errors.New("payment amount must be positive")
	ErrNotReceiver         = errors.New("only the receiver can confirm the payment")
	ErrNotParticipant      = errors.New("only the payer or receiver can cancel the payment")
	ErrInvalidStatusChange = errors.New("invalid status change")
)

// Notifier is the slice of the notification service payments need.
type Notifier interface {
	NotifyPaymentRecorded(ctx context.Context, recipientID int64, payerName string, amount float64, paymentID int64) error
	NotifyPaymentCompleted(ctx context.Context, recipientID int64, receiverName string, amount float64, paymentID int64) error
	NotifyPaymentCancelled(ctx context.Context, recipientID int64, actorName string, amount float64, paymentID int64) error
}

// Service handles payment business logic
type Service struct {
	repo     *Repository
	notifier Notifier
	log      zerolog.Logger
}

// NewService creates a new payment service
func NewService(repo *Repository, notifier Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// Create records a new pending payment from the initiator to another member.
// The receiver confirms it later, which is when it starts counting toward
// settlement.
func (s *Service) Create(ctx context.Context, initiatorID int64, req *CreatePaymentRequest) (*Payment, error) {
	if req.ToUserID == initiatorID {
		return nil, ErrCannotPaySelf
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	req.Amount = money.Round(req.Amount)

	payment, err := s.repo.Create(ctx, initiatorID, req)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyPaymentRecorded(ctx, payment.ToUserID, payment.FromUsername, payment.Amount, payment.ID); err != nil {
		// Notification failure must not fail the payment itself.
		s.log.Warn().Err(err).Int64("payment_id", payment.ID).Msg("failed to notify payment recorded")
	}

	return payment, nil
}

// GetByID retrieves a payment by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// ListByGroupID retrieves payments for a group
func (s *Service) ListByGroupID(ctx context.Context, groupID int64, page, perPage int) ([]*Payment, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByGroupID(ctx, groupID, perPage, offset)
}

// ListCompleted retrieves the completed payments in a group within the given
// time window, for settlement runs.
func (s *Service) ListCompleted(ctx context.Context, groupID int64, from, to *time.Time) ([]*Payment, error) {
	return s.repo.ListCompleted(ctx, groupID, from, to)
}

// Complete allows the receiver to confirm they got the money
func (s *Service) Complete(ctx context.Context, paymentID, userID int64) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if payment.ToUserID != userID {
		return nil, ErrNotReceiver
	}
	if payment.Status != PaymentStatusPending {
		return nil, ErrInvalidStatusChange
	}

	payment, err = s.repo.UpdateStatus(ctx, paymentID, PaymentStatusCompleted)
	if err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyPaymentCompleted(ctx, payment.FromUserID, payment.ToUsername, payment.Amount, payment.ID); err != nil {
		s.log.Warn().Err(err).Int64("payment_id", payment.ID).Msg("failed to notify payment completed")
	}

	return payment, nil
}

// Cancel voids a pending payment; either party can do it
func (s *Service) Cancel(ctx context.Context, paymentID, userID int64) (*Payment, error) {
	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	if payment.FromUserID != userID && payment.ToUserID != userID {
		return nil, ErrNotParticipant
	}
	if payment.Status != PaymentStatusPending {
		return nil, ErrInvalidStatusChange
	}

	payment, err = s.repo.UpdateStatus(ctx, paymentID, PaymentStatusCancelled)
	if err != nil {
		return nil, err
	}

	// Tell the other party, whichever side cancelled.
	recipientID, actorName := payment.ToUserID, payment.FromUsername
	if userID == payment.ToUserID {
		recipientID, actorName = payment.FromUserID, payment.ToUsername
	}
	if err := s.notifier.NotifyPaymentCancelled(ctx, recipientID, actorName, payment.Amount, payment.ID); err != nil {
		s.log.Warn().Err(err).Int64("payment_id", payment.ID).Msg("failed to notify payment cancelled")
	}

	return payment, nil
}
