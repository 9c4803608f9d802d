package dto

import "buildright/internal/feature/auth/domain/entity"

// LoginReq represents the request body for the /login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResp is the success body for /login. The user record excludes the
// credential hash via its JSON tags.
type LoginResp struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}
