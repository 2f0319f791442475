package types

import "time"

// Client represents a customer of the company.
// Each client may be assigned to a sales representative, who is the only
// sales-role user allowed to modify or delete the record.
type Client struct {
	// ID is the unique identifier of the client.
	ID int `json:"id" db:"id"`

	// FullName is the client's contact name.
	FullName string `json:"fullname" db:"fullname"`

	// Email is the client's email address. Unique across clients.
	Email string `json:"email" db:"email"`

	// Phone is the client's phone number.
	Phone string `json:"phone" db:"phone"`

	// CompanyName is the name of the client's company.
	CompanyName string `json:"company_name" db:"company_name"`

	// SalesRepID references the sales user who owns this client.
	// Nil when the client has no assigned representative.
	SalesRepID *int `json:"sales_rep_id" db:"sales_rep_id"`

	// SalesRepName is the full name of the assigned representative,
	// populated on reads for display purposes.
	SalesRepName string `json:"sales_rep_name,omitempty" db:"-"`

	// CreatedAt is the timestamp when the client was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the client.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
