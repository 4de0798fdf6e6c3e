package domain

type ProposalStatus string

const (
	ProposalStatusPending  ProposalStatus = "pending"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
)

// RentalProposal is a renter's request to rent a motorcycle for an
// inclusive date range. Status moves from pending to approved or rejected
// exactly once, by the owner; both outcomes are terminal.
type RentalProposal struct {
	ID           string      `json:"id"`
	MotorcycleID string      `json:"motorcycle_id"`
	Motorcycle   *Motorcycle `json:"motorcycle,omitempty"` // Populated on detail fetches
	RenterID     string      `json:"renter_id"`
	Renter       *Profile    `json:"renter,omitempty"`
	OwnerID      string      `json:"owner_id"` // Denormalized from the motorcycle at creation
	Owner        *Profile    `json:"owner,omitempty"`
	StartDate    string      `json:"start_date"` // yyyy-mm-dd, inclusive
	EndDate      string      `json:"end_date"`   // yyyy-mm-dd, inclusive
	// Amount snapshot fields, immutable once the proposal is created.
	DailyRateCents   int64          `json:"daily_rate_cents"`
	DurationDays     int32          `json:"duration_days"`
	BaseAmountCents  int64          `json:"base_amount_cents"`
	ServiceFeeCents  int64          `json:"service_fee_cents"`
	TotalAmountCents int64          `json:"total_amount_cents"`
	Purpose          string         `json:"purpose"`
	AdditionalInfo   string         `json:"additional_info,omitempty"`
	Status           ProposalStatus `json:"status"`
	RejectionReason  string         `json:"rejection_reason,omitempty"`
	CreatedOn        string         `json:"created_on"`
	UpdatedOn        string         `json:"updated_on"`
}

// RentalPeriod is the slice of a rental the availability check cares about.
type RentalPeriod struct {
	RentalID  string `json:"rental_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
