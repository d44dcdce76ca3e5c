// Package character provides persistence for character sheets
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/vtm-sheets/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/vtm-sheets/internal/entities/vtm"
)

// Repository defines the interface for character persistence.
// A key identifies one record: a file name for the file store, a record name
// for the Redis store.
type Repository interface {
	// List returns the key of every stored record in enumeration order
	// Returns errors.NotFound if the store location doesn't exist
	// Returns errors.IO or errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get loads one record
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Decode if the record is malformed or incomplete
	// Returns errors.IO or errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores one record
	// Returns errors.InvalidArgument for an empty key or nil character
	// Returns errors.AlreadyExists if the key is taken and Overwrite is false
	// Returns errors.IO or errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// ListInput defines the input for listing records
type ListInput struct {
	// Empty for now, can be extended later
}

// ListOutput defines the output for listing records
type ListOutput struct {
	Keys []string
}

// GetInput defines the input for loading a record
type GetInput struct {
	Key string
}

// GetOutput defines the output for loading a record
type GetOutput struct {
	Character *vtm.Character
}

// SaveInput defines the input for storing a record
type SaveInput struct {
	Key       string
	Character *vtm.Character
	Overwrite bool
}

// SaveOutput defines the output for storing a record
type SaveOutput struct {
	Key string
}

const (
	// Error messages
	errCharacterNil = "character cannot be nil"
	errKeyEmpty     = "character key cannot be empty"
)
