// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// LoginReq represents the request body for the login endpoint. Presence of both
// fields is checked in the handler so a missing field is a 400, not a 401.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
