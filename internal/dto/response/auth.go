package response

import (
	"lostfound-api/internal/data/entity"
)

// LoginResponse carries the account attributes a client may see. The
// password hash never appears here.
type LoginResponse struct {
	UserID string          `json:"userId"`
	Role   entity.UserRole `json:"role"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
}

func LoginToResponse(account *entity.Account) *LoginResponse {
	return &LoginResponse{
		UserID: account.UserID,
		Role:   account.Role,
		Name:   account.FullName,
		Email:  account.Email,
	}
}
