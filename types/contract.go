package types

import (
	"strings"
	"time"
)

// ContractStatus is the lifecycle state of a contract.
type ContractStatus string

const (
	ContractWaitingForSignature ContractStatus = "waiting_for_signature"
	ContractSigned              ContractStatus = "signed"
	ContractInProgress          ContractStatus = "in_progress"
	ContractFinished            ContractStatus = "finished"
	ContractTerminated          ContractStatus = "terminated"
	ContractCancelled           ContractStatus = "cancelled"
)

// ContractStatuses lists the valid status values in lifecycle order.
var ContractStatuses = []ContractStatus{
	ContractWaitingForSignature,
	ContractSigned,
	ContractInProgress,
	ContractFinished,
	ContractTerminated,
	ContractCancelled,
}

// Valid reports whether the status is one of the known values.
func (s ContractStatus) Valid() bool {
	for _, known := range ContractStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseContractStatus normalizes user input into a ContractStatus.
// Spaces are accepted in place of underscores ("waiting for signature").
func ParseContractStatus(s string) (ContractStatus, bool) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	status := ContractStatus(normalized)
	return status, status.Valid()
}

// Contract represents a commercial contract between the company and a client.
type Contract struct {
	// ID is the unique identifier of the contract.
	ID int `json:"id" db:"id"`

	// ClientID references the client this contract belongs to.
	ClientID int `json:"client_id" db:"client_id"`

	// SalesRepID references the sales user responsible for the contract.
	// When nil on save, the client's own sales representative is used.
	SalesRepID *int `json:"sales_rep_id" db:"sales_rep_id"`

	// ClientName and SalesRepName are populated on reads for display.
	ClientName   string `json:"client_name,omitempty" db:"-"`
	SalesRepName string `json:"sales_rep_name,omitempty" db:"-"`

	// TotalAmount is the full amount to be paid for the contract.
	TotalAmount float64 `json:"total_amount" db:"total_amount"`

	// AmountRemaining is the amount still to be paid.
	AmountRemaining float64 `json:"amount_remaining" db:"amount_remaining"`

	// Status is the current lifecycle state of the contract.
	Status ContractStatus `json:"status" db:"status"`

	// CreatedAt is the timestamp when the contract was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the contract.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
