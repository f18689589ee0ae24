package user

// CreateUserRequest bootstraps an operator account
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	DisplayName string  `json:"display_name" validate:"max=100"`
	PhotoURL    *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	Password    string  `json:"password" validate:"required,min=8"`
	Role        string  `json:"role" validate:"required"`
}
