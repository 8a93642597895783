package user

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Admin    bool   `json:"admin"`
	External bool   `json:"external"`
}

type UpdateUserRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Language string `json:"language"`
	Admin    *bool  `json:"admin"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type DeleteUserRequest struct {
	ID uint `json:"id" binding:"required"`
}
