package dto

import "github.com/j3-2000/routein-yoga-backend/internal/feature/auth/domain/entity"

// AuthResp is the success body for register and login. The user's Password
// field is excluded by its json tag, so the body never carries hash material.
type AuthResp struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

// UserResp is the success body for profile retrieval.
type UserResp struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}
