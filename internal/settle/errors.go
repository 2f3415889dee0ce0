package settle

import (
	"errors"
	"fmt"
)

// ErrEmptyGroup is returned when a settlement is requested for a group with
// no members - no fair share is definable.
var ErrEmptyGroup = errors.New("group has no members")

// UnknownPayerError reports an expense whose payer is not in the roster.
// This is a data-integrity problem in the input, not an arithmetic failure.
type UnknownPayerError struct {
	PayerID int64
}

func (e *UnknownPayerError) Error() string {
	return fmt.Sprintf("expense payer %d is not a group member", e.PayerID)
}

// UnknownMemberError reports a payment that references a member not in the
// roster.
type UnknownMemberError struct {
	MemberID int64
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("payment references unknown member %d", e.MemberID)
}
