package domain

// UserType distinguishes owners from branch operators. Owners may record
// transactions without an active shift reference.
type UserType string

const (
	UserOwner    UserType = "owner"
	UserOperator UserType = "operator"
)

// IsOwner reports whether the actor is exempt from the active-shift requirement.
func (t UserType) IsOwner() bool {
	return t == UserOwner
}
