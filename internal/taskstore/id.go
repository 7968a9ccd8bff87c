package taskstore

import (
	"github.com/google/uuid"
)

// IDPrefix is prepended to every generated task ID.
const IDPrefix = "task_"

// GenerateID returns a new task ID: IDPrefix followed by 8 random hex characters.
// Uniqueness is probabilistic; callers do not check for collisions.
func GenerateID() string {
	return IDPrefix + uuid.New().String()[:8]
}
