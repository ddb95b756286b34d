package request_models

type CreateBookingRequest struct {
	Type          string  `json:"type" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required,email"`
	CustomerPhone string  `json:"customer_phone"`
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name"`
	TravelDate    string  `json:"travel_date"`
	Travelers     int     `json:"travelers"`
	TotalAmount   float64 `json:"total_amount"`
	Message       string  `json:"message"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MarkBookingPaidRequest struct {
	Paid bool `json:"paid"`
}
