package model

// Role is the account role stored on a user.  Clients reserve
// tables; managers own restaurants and may never hold a
// reservation themselves.  The role is fixed at registration.
type Role string

const (
	RoleClient  Role = "client"  // regular customer, may reserve tables
	RoleManager Role = "manager" // restaurant manager, may not reserve
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleManager
}

// User represents a registered account.  Usernames and email
// addresses are each unique across the whole registry.  The
// password is stored only as a bcrypt hash; the plain text never
// reaches the store.  A user's reservations and the per-user
// reservation counter are owned by the store, not by this value.
//
// Fields:
//  Username     – unique account name.
//  PasswordHash – bcrypt hash of the password.
//  Email        – unique email address.
//  Address      – home address (street optional).
//  Role         – client or manager.
type User struct {
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"`
	Email        string  `json:"email"`
	Address      Address `json:"address"`
	Role         Role    `json:"role"`
}
