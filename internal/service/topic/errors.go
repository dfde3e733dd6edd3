package topic

import (
	"errors"

	"github.com/heartmarshall/brainboard/internal/domain"
)

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
