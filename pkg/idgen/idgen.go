// Package idgen builds the human readable identifiers handed out for orders and payments.
package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const suffixLen = 9

// New returns "<prefix>-<unix millis>-<9 upper-case alphanumerics>".
func New(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, at.UnixMilli(), suffix())
}

func suffix() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:suffixLen])
}
