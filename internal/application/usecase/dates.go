package usecase

import (
	"fmt"
	"time"

	"github.com/zapcom/resource-pulse-api/internal/domain"
)

const dateLayout = "2006-01-02"

// parseDate parsea una fecha YYYY-MM-DD; formato inválido se reporta como entrada inválida.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

// parseDatePtr igual que parseDate pero tolera nil.
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
