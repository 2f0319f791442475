package types

import "time"

// Event represents an event organized for a signed contract.
// Events are run by a support-staff user.
type Event struct {
	// ID is the unique identifier of the event.
	ID int `json:"id" db:"id"`

	// ContractID references the contract the event is organized under.
	ContractID int `json:"contract_id" db:"contract_id"`

	// Name is the display name of the event.
	Name string `json:"name" db:"name"`

	// StartDate and EndDate bound the event.
	StartDate time.Time `json:"start_date" db:"start_date"`
	EndDate   time.Time `json:"end_date" db:"end_date"`

	// SupportStaffID references the support user assigned to the event.
	SupportStaffID int `json:"support_staff_id" db:"support_staff_id"`

	// SupportStaffName is populated on reads for display.
	SupportStaffName string `json:"support_staff_name,omitempty" db:"-"`

	// Location is where the event takes place.
	Location string `json:"location" db:"location"`

	// Attendees is the expected number of participants.
	Attendees int `json:"attendees" db:"attendees"`

	// Notes holds free-form remarks about the event.
	Notes string `json:"notes" db:"notes"`

	// CreatedAt is the timestamp when the event was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the event.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
