package txbuild

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingStateCommitment is returned when the ledger answers the state
	// commitment query with an empty body.
	ErrMissingStateCommitment = errors.New("could not receive response from state commitment call")

	// ErrMissingHandle is returned when a submit succeeds without a handle.
	ErrMissingHandle = errors.New("submit handle is missing")

	// ErrTransactionRejected is returned by WaitForStatus for rejected transactions.
	ErrTransactionRejected = errors.New("transaction rejected")

	// errPending keeps the status poller going.
	errPending = errors.New("transaction is still pending")
)

// StateCommitment is the current ledger root hash and block height.
type StateCommitment struct {
	Hash   json.RawMessage
	Height uint64
}

// Status is the lifecycle state of a submitted transaction.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusCommitted Status = "Committed"
	StatusRejected  Status = "Rejected"
	StatusUnknown   Status = "Unknown"
)

// TransactionStatus is the submission server's view of a handle.
type TransactionStatus struct {
	State Status

	// TxnSid and OutputSids are set once the transaction is committed.
	TxnSid     uint64
	OutputSids []uint64

	// Reason carries the rejection message, if any.
	Reason string
}

// Stage identifies a step of the submission pipeline.
type Stage string

const (
	StageFee     Stage = "fee"
	StageBuilder Stage = "builder"
	StageAttach  Stage = "attach"
	StageSubmit  Stage = "submit"
)

// StageError reports the pipeline stage at which an operation failed.
type StageError struct {
	Operation string
	Stage     Stage
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s stage: %v", e.Operation, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
