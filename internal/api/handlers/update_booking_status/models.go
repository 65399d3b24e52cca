package update_booking_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Action string `json:"action" validate:"required"`
}
