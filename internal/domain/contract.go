package domain

type ContractStatus string

const (
	ContractStatusPending   ContractStatus = "pending"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// Contract is created 1:1 with a rental proposal at approval time and
// awaits the renter's signature.
type Contract struct {
	ID        string          `json:"id"`
	RentalID  string          `json:"rental_id"`
	Rental    *RentalProposal `json:"rental,omitempty"`
	Status    ContractStatus  `json:"status"`
	SignedOn  *string         `json:"signed_on,omitempty"`
	CreatedOn string          `json:"created_on"`
	UpdatedOn string          `json:"updated_on"`
}
