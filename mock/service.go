package mock

import (
	"context"

	"github.com/mkaravias/eortologio"
)

var (
	_ eortologio.MonthService = (*MonthService)(nil)
	_ eortologio.NameService  = (*NameService)(nil)
)

// MonthService is a mock implementation of eortologio.MonthService.
type MonthService struct {
	MonthEntriesFn func(ctx context.Context, month int) ([]eortologio.NamedayEntry, error)
}

func (s *MonthService) MonthEntries(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
	return s.MonthEntriesFn(ctx, month)
}

// NameService is a mock implementation of eortologio.NameService.
type NameService struct {
	CelebrationDatesFn func(ctx context.Context, name string) ([]eortologio.CelebrationDate, error)
}

func (s *NameService) CelebrationDates(ctx context.Context, name string) ([]eortologio.CelebrationDate, error) {
	return s.CelebrationDatesFn(ctx, name)
}
