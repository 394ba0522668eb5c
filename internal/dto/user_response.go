package dto

type LoginResponse struct {
	Token      string `json:"token"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
}

type UserResponse struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	CreatedAt  int64  `json:"created_at"`
}
