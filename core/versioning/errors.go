package versioning

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Failure classes of a write. Reconciliation itself never raises these;
// they originate from request validation and from the persistence step.
var (
	// ErrValidation marks a submitted document that fails shape
	// constraints. Not retryable; the request must be fixed.
	ErrValidation = errors.New("invalid document")

	// ErrConflict marks a write whose base version went stale between
	// read and commit. Retryable after re-reading the latest version.
	ErrConflict = errors.New("version conflict")

	// ErrStorage marks an infrastructure failure of the persistence
	// layer. The caller may retry transient instances with backoff.
	ErrStorage = errors.New("storage failure")
)

// Validationf wraps a formatted message in ErrValidation.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// ClassifyWriteError maps an error returned by the persistence layer to
// one of the failure classes. A duplicate key on the version column
// means a concurrent writer committed first, so it becomes ErrConflict.
// Everything else infrastructure-shaped becomes ErrStorage. Errors that
// already carry a class pass through unchanged.
func ClassifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) || errors.Is(err, ErrStorage) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
