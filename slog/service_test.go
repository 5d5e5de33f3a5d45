package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mkaravias/eortologio"
	"github.com/mkaravias/eortologio/mock"
	eortslog "github.com/mkaravias/eortologio/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMonthService_MonthEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.MonthService{
		MonthEntriesFn: func(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
			return []eortologio.NamedayEntry{{Day: 1, Month: month}, {Day: 2, Month: month}}, nil
		},
	}

	svc := eortslog.NewLoggingMonthService(inner, logger)
	entries, err := svc.MonthEntries(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, entries, 2)
	output := buf.String()
	assert.Contains(t, output, "month entries")
	assert.Contains(t, output, "month=4")
	assert.Contains(t, output, "count=2")
	assert.Contains(t, output, "duration=")
}

func TestLoggingNameService_CelebrationDates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.NameService{
		CelebrationDatesFn: func(ctx context.Context, name string) ([]eortologio.CelebrationDate, error) {
			return nil, eortologio.Errorf(eortologio.ENOTFOUND, "name %q not found", name)
		},
	}

	svc := eortslog.NewLoggingNameService(inner, logger)
	_, err := svc.CelebrationDates(context.Background(), "Ξξξξ")

	require.Error(t, err)
	output := buf.String()
	assert.Contains(t, output, "celebration dates")
	assert.Contains(t, output, "count=0")
	assert.Contains(t, output, "not found")
}
