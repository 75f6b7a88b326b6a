package models

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// ProtectedUsername is the system account that can be edited but never deleted.
const ProtectedUsername = "admin"

func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User as transmitted by the backend. Password is write-only: the backend
// never fills it in responses.
type User struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Password  string   `json:"password,omitempty"`
	Role      UserRole `json:"role"`
	CreatedAt string   `json:"created_at,omitempty"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Protected reports whether u is the undeletable system account.
func (u User) Protected() bool { return u.Username == ProtectedUsername }

type NewUser struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

type UserList struct {
	Users []User `json:"users"`
	Total int64  `json:"total"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
