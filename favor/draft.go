package favor

import (
	"fmt"
	"strings"
)

var (
	ErrEmptyTitle       = fmt.Errorf("favor title is empty")
	ErrEmptyDescription = fmt.Errorf("favor description is empty")
)

// ValidateDraft checks the author supplied fields of a new favor. It runs
// before any remote call is made.
func ValidateDraft(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}
