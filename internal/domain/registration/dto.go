// internal/domain/registration/dto.go
package registration

// CreateRequest assigns an account to an event.
type CreateRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	EventID   string `json:"event_id" binding:"required,uuid"`
	Note      string `json:"note"`
}

// UpdateStatusRequest changes the participation status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}
