package transport

import "github.com/google/uuid"

// AddEntryRequest contains data for the catalog get-or-create operation.
type AddEntryRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// EntryResponse represents a catalog entry in API responses.
type EntryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"createdAt"`
}

// DeleteResponse is the unconditional catalog delete acknowledgement.
type DeleteResponse struct {
	OK bool `json:"ok"`
}
