package entity

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

// Account is a row in student_staff. UserID is the campus staff/student
// number supplied by the caller at registration, not a generated key.
type Account struct {
	UserID       string     `db:"user_id"`
	FullName     string     `db:"full_name"`
	Email        string     `db:"email"`
	PhoneNumber  *string    `db:"phone_number"`
	PasswordHash string     `db:"password_hash"`
	Role         UserRole   `db:"role"`
	LastLogin    *time.Time `db:"last_login"`
}
