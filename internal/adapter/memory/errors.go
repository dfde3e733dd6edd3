package memory

import (
	"fmt"

	"github.com/heartmarshall/brainboard/internal/domain"
)

// NotFound wraps domain.ErrNotFound with the entity and id.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
}
