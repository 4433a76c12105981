package dto

type SignupRequest struct {
	Email string `json:"email"`
}

type SignupResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
