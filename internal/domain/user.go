package domain

type ProfileRole string

const (
	ProfileRoleRenter ProfileRole = "renter"
	ProfileRoleOwner  ProfileRole = "owner"
)

// Profile is the application-side record for an externally authenticated
// user. Credentials and sessions live with the identity provider;
// IdentityUID links the two.
type Profile struct {
	ID          string      `json:"id"`
	IdentityUID string      `json:"-"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Role        ProfileRole `json:"role"`
	CompanyName string      `json:"company_name,omitempty"`
	Verified    bool        `json:"verified"`
	CreatedOn   string      `json:"created_on"`
	UpdatedOn   string      `json:"updated_on"`
}
