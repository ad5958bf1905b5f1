package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard-api/internal/storage"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrDuplicateEmail) {
		return fmt.Errorf("%w: %s (duplicate email)", ErrConflict, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s", ErrConflict, operation)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// normalizeLines flattens list-or-free-text input into a clean ordered
// list: every element is split on newlines, entries are trimmed, and empty
// entries dropped. A pre-split array and an equivalent newline-separated
// string therefore normalize to the same result.
func normalizeLines(input []string) []string {
	out := []string{}
	for _, chunk := range input {
		for _, line := range strings.Split(chunk, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}
