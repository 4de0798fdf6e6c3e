package domain

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Payment tracks the amount due for an approved rental. One payment row is
// created per approval, due on the rental start date.
type Payment struct {
	ID          string        `json:"id"`
	RentalID    string        `json:"rental_id"`
	RenterID    string        `json:"renter_id"`
	OwnerID     string        `json:"owner_id"`
	AmountCents int64         `json:"amount_cents"`
	DueDate     string        `json:"due_date"` // yyyy-mm-dd
	Status      PaymentStatus `json:"status"`
	PaidOn      *string       `json:"paid_on,omitempty"`
	CreatedOn   string        `json:"created_on"`
	UpdatedOn   string        `json:"updated_on"`
}
