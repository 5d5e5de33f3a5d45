package scrape_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mkaravias/eortologio"
	"github.com/mkaravias/eortologio/mock"
	"github.com/mkaravias/eortologio/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const monthFixture = `<html><body>
<table id="table0"><tbody>
<tr class="row">
  <td name="1"></td><td></td>
  <td><div class="name"><a href="/a">Βασίλης</a></div></td>
  <td><b>Μεγάλου Βασιλείου</b></td>
</tr>
</tbody></table>
</body></html>`

const nameFixture = `<html><body><div class="post-content">
<h1>Πότε γιορτάζει η Μαρία;</h1>
<table class="calendar">
<tr><td>15 Αυγούστου</td><td>Κοίμησις της Θεοτόκου</td></tr>
</table>
</div></body></html>`

func TestService_MonthEntries(t *testing.T) {
	t.Parallel()

	t.Run("rejects out-of-range month before any fetch", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetches++
				return "", nil
			},
		}

		svc := scrape.NewService(fetcher, "", nil)
		for _, month := range []int{0, 13, -1} {
			_, err := svc.MonthEntries(context.Background(), month)
			require.Error(t, err)
			assert.Equal(t, eortologio.EINVALID, eortologio.ErrorCode(err))
		}
		assert.Zero(t, fetches)
	})

	t.Run("builds the month URL with the encoded nominative name", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				gotURL = url
				return monthFixture, nil
			},
		}

		svc := scrape.NewService(fetcher, "https://www.eortologio.net/", nil)
		entries, err := svc.MonthEntries(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 1, entries[0].Month)
		assert.Equal(t, "https://www.eortologio.net/month/1/%CE%99%CE%B1%CE%BD%CE%BF%CF%85%CE%AC%CF%81%CE%B9%CE%BF%CF%82", gotURL)
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", eortologio.Errorf(eortologio.ETIMEOUT, "timeout fetching %s", url)
			},
		}

		svc := scrape.NewService(fetcher, "", nil)
		_, err := svc.MonthEntries(context.Background(), 6)
		require.Error(t, err)
		assert.Equal(t, eortologio.ETIMEOUT, eortologio.ErrorCode(err))
	})
}

func TestService_CelebrationDates(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty name before any fetch", func(t *testing.T) {
		t.Parallel()

		fetches := 0
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetches++
				return "", nil
			},
		}

		svc := scrape.NewService(fetcher, "", nil)
		_, err := svc.CelebrationDates(context.Background(), "   ")
		require.Error(t, err)
		assert.Equal(t, eortologio.EINVALID, eortologio.ErrorCode(err))
		assert.Zero(t, fetches)
	})

	t.Run("builds the lookup URL and defaults the year from the clock", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				gotURL = url
				return nameFixture, nil
			},
		}

		svc := scrape.NewService(fetcher, "https://www.eortologio.net", nil)
		svc.Now = func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) }

		dates, err := svc.CelebrationDates(context.Background(), " Μαρία ")
		require.NoError(t, err)
		require.Len(t, dates, 1)
		assert.Equal(t, "15 Αυγούστου 2026", dates[0].DateStr)
		assert.Equal(t, "https://www.eortologio.net/pote_giortazei/%CE%9C%CE%B1%CF%81%CE%AF%CE%B1", gotURL)
	})
}

func TestWarm(t *testing.T) {
	t.Parallel()

	t.Run("requests every month exactly once", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		seen := make(map[int]int)
		months := &mock.MonthService{
			MonthEntriesFn: func(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
				mu.Lock()
				seen[month]++
				mu.Unlock()
				return nil, nil
			},
		}

		err := scrape.Warm(context.Background(), months, 3)
		require.NoError(t, err)
		require.Len(t, seen, 12)
		for month := 1; month <= 12; month++ {
			assert.Equal(t, 1, seen[month])
		}
	})

	t.Run("returns the first error", func(t *testing.T) {
		t.Parallel()

		months := &mock.MonthService{
			MonthEntriesFn: func(ctx context.Context, month int) ([]eortologio.NamedayEntry, error) {
				if month == 7 {
					return nil, eortologio.Errorf(eortologio.EUNAVAILABLE, "upstream down")
				}
				return nil, nil
			},
		}

		err := scrape.Warm(context.Background(), months, 0)
		require.Error(t, err)
		assert.Equal(t, eortologio.EUNAVAILABLE, eortologio.ErrorCode(err))
	})
}
