package dto

type UnlockRequest struct {
	Code string `json:"code" binding:"required"`
}

type UnlockResponse struct {
	Token string `json:"token"`
}
