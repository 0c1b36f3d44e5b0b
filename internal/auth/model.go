package auth

// Roles
const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}
