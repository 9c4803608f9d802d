// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /signup endpoint.
// All profile fields are required; the email must be well-formed.
type SignupReq struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Company   string `json:"company" binding:"required"`
	JobTitle  string `json:"jobTitle" binding:"required"`
}

// SignupResp is the success body for /signup.
type SignupResp struct {
	Success bool `json:"success"`
	UserID  uint `json:"userId"`
}
