package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrAlreadyExists is returned when a storage uniqueness constraint
	// rejects an insert. Translation to a client-visible outcome happens
	// at the HTTP layer.
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")

	// ErrAlreadyLinked is returned when linking a pair that is already
	// present in an association table.
	ErrAlreadyLinked = NewDomainError("ALREADY_LINKED", "Entities are already linked")
)

// NotFoundError is raised by a domain service when a lookup (or the
// existence check inside a link operation) yields no row. It carries the
// entity kind so a failed link names the side that was missing.
type NotFoundError struct {
	Kind string
	ID   uint
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Kind, e.ID)
}

// NewNotFoundError creates a NotFoundError for the given entity kind and id
func NewNotFoundError(kind string, id uint) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}
