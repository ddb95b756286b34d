package request_models

type UpdateDriverStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
