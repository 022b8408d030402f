package id

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewTransactionID returns an ID like "Checking-12-6f1c...". The uuid
// component keeps retried imports of the same file from colliding; the
// account label and row index make IDs readable when debugging stored data.
func NewTransactionID(account string, row int) string {
	label := strings.TrimSpace(account)
	if label == "" {
		label = "unknown"
	}
	return fmt.Sprintf("%s-%d-%s", label, row, uuid.NewString())
}
