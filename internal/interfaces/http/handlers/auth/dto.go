package auth

import userdto "pepperminto/internal/application/user/dto"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresIn int64            `json:"expires_in"`
	User      *userdto.UserDTO `json:"user"`
}

type SSOLoginResponse struct {
	AuthURL string `json:"auth_url"`
}
