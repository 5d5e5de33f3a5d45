package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkaravias/eortologio"
)

var (
	_ eortologio.MonthService = (*LoggingMonthService)(nil)
	_ eortologio.NameService  = (*LoggingNameService)(nil)
)

// LoggingMonthService wraps a MonthService with operation logging.
type LoggingMonthService struct {
	next   eortologio.MonthService
	logger *slog.Logger
}

// NewLoggingMonthService creates a new LoggingMonthService.
func NewLoggingMonthService(next eortologio.MonthService, logger *slog.Logger) *LoggingMonthService {
	return &LoggingMonthService{next: next, logger: logger}
}

// MonthEntries delegates to the wrapped service and logs the operation.
func (s *LoggingMonthService) MonthEntries(ctx context.Context, month int) (entries []eortologio.NamedayEntry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("month entries",
			"month", month,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MonthEntries(ctx, month)
}

// LoggingNameService wraps a NameService with operation logging.
type LoggingNameService struct {
	next   eortologio.NameService
	logger *slog.Logger
}

// NewLoggingNameService creates a new LoggingNameService.
func NewLoggingNameService(next eortologio.NameService, logger *slog.Logger) *LoggingNameService {
	return &LoggingNameService{next: next, logger: logger}
}

// CelebrationDates delegates to the wrapped service and logs the operation.
func (s *LoggingNameService) CelebrationDates(ctx context.Context, name string) (dates []eortologio.CelebrationDate, err error) {
	defer func(begin time.Time) {
		s.logger.Info("celebration dates",
			"name", name,
			"count", len(dates),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CelebrationDates(ctx, name)
}
