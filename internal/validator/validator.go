package validator

import (
	"context"
	"sort"

	"svw.info/watersort/internal/domain"
)

// CountValidator checks that each colour present fills exactly one bottle.
type CountValidator struct{}

func New() *CountValidator { return &CountValidator{} }

func (v *CountValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.ColorConflict, error) {
	conf := make([]domain.ColorConflict, 0, 4)
	for c, n := range b.ColorCounts() {
		if n != domain.Capacity {
			conf = append(conf, domain.ColorConflict{Color: c, Count: n})
		}
	}
	sort.Slice(conf, func(i, j int) bool { return conf[i].Color.Code() < conf[j].Color.Code() })
	return len(conf) == 0, conf, nil
}
