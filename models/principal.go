package models

// Principal kinds attached to a request after token verification.
const (
	PrincipalCustomer = "customer"
	PrincipalAdmin    = "admin"
)

// Principal is the authenticated actor behind a request.
type Principal struct {
	Kind  string `json:"kind"`
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// IsAdmin reports whether the principal is a back-office account.
func (p Principal) IsAdmin() bool { return p.Kind == PrincipalAdmin }
