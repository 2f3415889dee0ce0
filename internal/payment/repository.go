package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"
)

// Repository handles payment data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new payment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const paymentColumns = `
	p.id, p.group_id, p.from_user_id, p.to_user_id, p.amount, p.currency_code, p.note, p.status, p.created_at, p.completed_at,
	f.username AS from_username, t.username AS to_username
`

const paymentJoins = `
	FROM payments p
	JOIN users f ON p.from_user_id = f.id
	JOIN users t ON p.to_user_id = t.id
`

func scanPayment(row interface{ Scan(...interface{}) error }) (*Payment, error) {
	payment := &Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.GroupID,
		&payment.FromUserID,
		&payment.ToUserID,
		&payment.Amount,
		&payment.CurrencyCode,
		&payment.Note,
		&payment.Status,
		&payment.CreatedAt,
		&payment.CompletedAt,
		&payment.FromUsername,
		&payment.ToUsername,
	)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Create inserts a new pending payment
func (r *Repository) Create(ctx context.Context, fromUserID int64, req *CreatePaymentRequest) (*Payment, error) {
	query := `
		WITH inserted AS (
			INSERT INTO payments (group_id, from_user_id, to_user_id, amount, currency_code, note, status)
			VALUES ($1, $2, $3, $4, 'EUR', $5, $6)
			RETURNING *
		)
		SELECT ` + paymentColumns + `
		FROM inserted p
		JOIN users f ON p.from_user_id = f.id
		JOIN users t ON p.to_user_id = t.id
	`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query,
		req.GroupID, fromUserID, req.ToUserID, req.Amount, req.Note, PaymentStatusPending))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// GetByID retrieves a payment by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Payment, error) {
	query := `SELECT ` + paymentColumns + paymentJoins + ` WHERE p.id = $1`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return payment, nil
}

// ListByGroupID retrieves all payments in a group, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Payment, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM payments WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	query := `SELECT ` + paymentColumns + paymentJoins + `
		WHERE p.group_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, total, nil
}

// ListCompleted retrieves COMPLETED payments in a group within the optional
// time window. This is the only payment set settlement ever sees.
func (r *Repository) ListCompleted(ctx context.Context, groupID int64, from, to *time.Time) ([]*Payment, error) {
	query := `SELECT ` + paymentColumns + paymentJoins + `
		WHERE p.group_id = $1 AND p.status = $2`
	args := []interface{}{groupID, PaymentStatusCompleted}

	if from != nil {
		args = append(args, *from)
		query += ` AND p.completed_at >= $` + strconv.Itoa(len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += ` AND p.completed_at < $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY p.completed_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	return payments, nil
}

// UpdateStatus updates the status of a payment; completing also stamps
// completed_at.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status PaymentStatus) (*Payment, error) {
	query := `
		WITH updated AS (
			UPDATE payments
			SET status = $2,
			    completed_at = CASE WHEN $2 = 'COMPLETED' THEN NOW() ELSE completed_at END
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + paymentColumns + `
		FROM updated p
		JOIN users f ON p.from_user_id = f.id
		JOIN users t ON p.to_user_id = t.id
	`

	payment, err := scanPayment(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return payment, nil
}
