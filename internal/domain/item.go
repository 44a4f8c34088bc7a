package domain

// Status is the processing state of an item.
// It transitions monotonically from NEW toward PROCESSED and is never
// reverted automatically.
type Status string

const (
	// StatusNew is the initial state of a freshly created item.
	StatusNew Status = "NEW"

	// StatusProcessed marks an item that has been through batch processing.
	StatusProcessed Status = "PROCESSED"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessed:
		return true
	}
	return false
}

// Item is the unit record managed by the service.
// The ID is assigned by the store on creation and never changes afterwards.
type Item struct {
	// ID is the opaque unique identifier, assigned by the store
	ID string `json:"id"`

	// Name is a free-form display name
	Name string `json:"name" binding:"required"`

	// Description is free-form descriptive text
	Description string `json:"description"`

	// Email is a contact address, validated at the HTTP boundary
	Email string `json:"email" binding:"required,email"`

	// Status drives the batch transformer's behavior
	Status Status `json:"status"`
}

// Processed returns a copy of the item with its status set to PROCESSED.
// Applying it to an already processed item is a no-op transition.
func (i Item) Processed() Item {
	i.Status = StatusProcessed
	return i
}
