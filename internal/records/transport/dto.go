package transport

import "github.com/google/uuid"

// CreateCallRequest contains data for logging an incoming call.
type CreateCallRequest struct {
	CallerName      string `json:"callerName" validate:"required"`
	CallerPhone     string `json:"callerPhone" validate:"omitempty,phone"`
	Datetime        string `json:"datetime" validate:"required"`
	PersonRequested string `json:"personRequested"`
	Notes           string `json:"notes"`
	NotifyEmail     bool   `json:"notifyEmail"`
	NotifyWhatsApp  bool   `json:"notifyWhatsApp"`
}

// CallResponse represents a call record in API responses.
type CallResponse struct {
	ID              uuid.UUID `json:"id"`
	CallerName      string    `json:"callerName"`
	CallerPhone     string    `json:"callerPhone"`
	Datetime        string    `json:"datetime"`
	PersonRequested string    `json:"personRequested"`
	Notes           string    `json:"notes"`
	NotifyEmail     bool      `json:"notifyEmail"`
	NotifyWhatsApp  bool      `json:"notifyWhatsApp"`
	CreatedAt       string    `json:"createdAt"`
}

// CreateFollowupRequest contains data for scheduling a follow-up.
// Status is optional; when present it must be one of the four defined values.
type CreateFollowupRequest struct {
	Status        *string `json:"status"`
	DueDate       string  `json:"dueDate"`
	Staff         string  `json:"staff"`
	EmailReminder bool    `json:"emailReminder"`
	WAReminder    bool    `json:"waReminder"`
}

// FollowupResponse represents a follow-up record in API responses.
type FollowupResponse struct {
	ID            uuid.UUID `json:"id"`
	Status        string    `json:"status"`
	DueDate       *string   `json:"dueDate"`
	Staff         string    `json:"staff"`
	EmailReminder bool      `json:"emailReminder"`
	WAReminder    bool      `json:"waReminder"`
	CreatedAt     string    `json:"createdAt"`
}

// CreateRequestRequest contains data for a customer service request.
type CreateRequestRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Email   string `json:"email"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

// RequestResponse represents a customer service request in API responses.
type RequestResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	Notes     string    `json:"notes"`
	CreatedAt string    `json:"createdAt"`
}

// CreateIssueRequest contains data for reporting a service issue.
// Priority defaults to Low only when the field is absent; out-of-enum
// values are rejected.
type CreateIssueRequest struct {
	CustomerName string  `json:"customerName"`
	Phone        string  `json:"phone" validate:"omitempty,phone"`
	VehicleModel string  `json:"vehicleModel"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Priority     *string `json:"priority"`
	Staff        string  `json:"staff"`
	DueDate      string  `json:"dueDate"`
	Status       string  `json:"status"`
}

// IssueResponse represents a service issue in API responses.
type IssueResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	VehicleModel string    `json:"vehicleModel"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Staff        string    `json:"staff"`
	DueDate      *string   `json:"dueDate"`
	Status       string    `json:"status"`
	CreatedAt    string    `json:"createdAt"`
}
