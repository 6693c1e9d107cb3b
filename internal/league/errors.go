package league

import (
	"errors"
	"fmt"
)

var (
	// ErrPlayerNotFound is returned when a submission references an unknown player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrDatastoreUnavailable wraps every failure of the underlying database.
	ErrDatastoreUnavailable = errors.New("datastore unavailable")
	// ErrMatchNotFound is returned when a match id does not exist or is not approved.
	ErrMatchNotFound = errors.New("match not found")
	// ErrCatalogUnavailable is returned when the champion catalog cannot be read.
	ErrCatalogUnavailable = errors.New("champion catalog unavailable")
)

// ValidationError describes a rejected submission field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func datastoreErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDatastoreUnavailable, op, err)
}
