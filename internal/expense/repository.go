package expense

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
)

// Repository handles expense data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new expense into the database
func (r *Repository) Create(ctx context.Context, payerID int64, req *CreateExpenseRequest) (*Expense, error) {
	query := `
		INSERT INTO expenses (group_id, payer_id, description, category, amount, source, image_url, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, group_id, payer_id, description, category, amount, source, image_url, occurred_at, created_at
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query,
		req.GroupID,
		payerID,
		req.Description,
		req.Category,
		req.Amount,
		req.Source,
		req.ImageURL,
		req.OccurredAt,
	).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Category,
		&expense.Amount,
		&expense.Source,
		&expense.ImageURL,
		&expense.OccurredAt,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.category, e.amount, e.source, e.image_url, e.occurred_at, e.created_at, u.username
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Category,
		&expense.Amount,
		&expense.Source,
		&expense.ImageURL,
		&expense.OccurredAt,
		&expense.CreatedAt,
		&expense.PayerUsername,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// filterClause builds the WHERE fragment and args for a Filter, continuing
// from the given placeholder index.
func filterClause(f Filter, argIdx int) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.From != nil {
		clauses = append(clauses, "e.occurred_at >= $"+strconv.Itoa(argIdx))
		args = append(args, *f.From)
		argIdx++
	}
	if f.To != nil {
		clauses = append(clauses, "e.occurred_at < $"+strconv.Itoa(argIdx))
		args = append(args, *f.To)
		argIdx++
	}
	if f.Category != "" {
		clauses = append(clauses, "e.category = $"+strconv.Itoa(argIdx))
		args = append(args, f.Category)
		argIdx++
	}
	if f.PayerID != 0 {
		clauses = append(clauses, "e.payer_id = $"+strconv.Itoa(argIdx))
		args = append(args, f.PayerID)
		argIdx++
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " AND " + strings.Join(clauses, " AND "), args
}

// ListByGroupID retrieves expenses for a group with pagination
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, f Filter, limit, offset int) ([]*Expense, int, error) {
	where, filterArgs := filterClause(f, 2)

	countQuery := `SELECT COUNT(*) FROM expenses e WHERE e.group_id = $1` + where
	countArgs := append([]interface{}{groupID}, filterArgs...)

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	limitIdx := 2 + len(filterArgs)
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.category, e.amount, e.source, e.image_url, e.occurred_at, e.created_at, u.username
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1` + where + `
		ORDER BY e.occurred_at DESC
		LIMIT $` + strconv.Itoa(limitIdx) + ` OFFSET $` + strconv.Itoa(limitIdx+1)

	args := append(countArgs, limit, offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := scanExpenses(rows)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// ListInScope retrieves every expense matching the filter, unpaginated.
// Used to assemble the input set for settlement runs.
func (r *Repository) ListInScope(ctx context.Context, groupID int64, f Filter) ([]*Expense, error) {
	where, filterArgs := filterClause(f, 2)

	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.category, e.amount, e.source, e.image_url, e.occurred_at, e.created_at, u.username
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1` + where + `
		ORDER BY e.occurred_at ASC
	`

	args := append([]interface{}{groupID}, filterArgs...)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in scope: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func scanExpenses(rows *sql.Rows) ([]*Expense, error) {
	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Category,
			&expense.Amount,
			&expense.Source,
			&expense.ImageURL,
			&expense.OccurredAt,
			&expense.CreatedAt,
			&expense.PayerUsername,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// Update modifies an existing expense
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	query := `
		UPDATE expenses
		SET description = COALESCE($2, description),
		    category = COALESCE($3, category),
		    image_url = COALESCE($4, image_url),
		    occurred_at = COALESCE($5, occurred_at)
		WHERE id = $1
		RETURNING id, group_id, payer_id, description, category, amount, source, image_url, occurred_at, created_at
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id, req.Description, req.Category, req.ImageURL, req.OccurredAt).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Category,
		&expense.Amount,
		&expense.Source,
		&expense.ImageURL,
		&expense.OccurredAt,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// Delete removes an expense from the database
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM expenses WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
