package user

import "time"

type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
}

type ListInput struct {
	Search string
	Page   int
	Limit  int
}

type UserDTO struct {
	UserID           string    `json:"user_id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	PhotoURL         string    `json:"photo_url"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	SuspensionReason *string   `json:"suspension_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListResult struct {
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
	Data  []UserDTO `json:"data"`
}
