package usecase

import (
	"errors"
	"fmt"

	listing "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/listing/application/domain"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("listing use case persistence error")

// wrapPersistence keeps domain sentinels intact while tagging everything
// else as an infrastructure failure.
func wrapPersistence(err error) error {
	if errors.Is(err, listing.ErrPostNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
