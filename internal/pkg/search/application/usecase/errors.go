package usecase

import (
	"errors"
	"fmt"

	search "github.com/StefanoAtzeni2001/adottaTO/internal/pkg/search/application/domain"
)

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = fmt.Errorf("search use case persistence error")

// wrapPersistence keeps domain sentinels intact while tagging everything
// else as an infrastructure failure.
func wrapPersistence(err error) error {
	if errors.Is(err, search.ErrSearchNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
