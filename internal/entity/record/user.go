package record

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"isActive"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserDraft is the body of an admin user update.
type UserDraft struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"isActive"`
}
