package ident

import (
	"strings"

	"github.com/google/uuid"
)

// Length is the number of characters in a tracking id (128 bits as hex).
const Length = 32

// New returns a fresh tracking id: a random UUID rendered as 32 lowercase
// hex characters with the hyphens stripped. Ids are never persisted, so
// uniqueness is probabilistic only.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
