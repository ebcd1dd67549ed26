package guard_test

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/core/domain"
	"go.trai.ch/pantry/internal/core/ports"
	"go.trai.ch/pantry/internal/guard"
	"go.trai.ch/zerr"
)

func TestWithTimeout_OpWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		got, err := guard.WithTimeout(context.Background(), time.Second, "fast read", func(context.Context) (int, error) {
			return 42, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})
}

func TestWithTimeout_TimerWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		_, err := guard.WithTimeout(context.Background(), 100*time.Millisecond, "slow read", func(context.Context) (int, error) {
			time.Sleep(time.Hour)
			return 42, nil
		})
		require.ErrorContains(t, err, domain.ErrLoadTimeout.Error())
	})
}

func TestWithTimeout_ContextCancelled(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := guard.WithTimeout(ctx, time.Second, "read", func(context.Context) (int, error) {
			time.Sleep(time.Hour)
			return 0, nil
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}

// fakeSource is a controllable subscription source.
type fakeSource struct {
	onData    func(string)
	onError   func(error)
	unsubbed  bool
	establish error
}

func (f *fakeSource) source(onData func(string), onError func(error)) (ports.Unsubscribe, error) {
	if f.establish != nil {
		return nil, f.establish
	}
	f.onData = onData
	f.onError = onError
	return func() { f.unsubbed = true }, nil
}

func TestSubscribeWithTimeout_SnapshotDefusesTimer(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := &fakeSource{}
		var snapshots []string
		var errs []error

		unsub := guard.SubscribeWithTimeout(src.source,
			func(s string) { snapshots = append(snapshots, s) },
			func(err error) { errs = append(errs, err) },
			100*time.Millisecond, "list items")
		defer unsub()

		time.Sleep(50 * time.Millisecond)
		src.onData("first")

		// Well past the initial budget: the defused timer must stay silent
		// even though no further snapshot arrives.
		time.Sleep(time.Second)
		src.onData("second")

		assert.Equal(t, []string{"first", "second"}, snapshots)
		assert.Empty(t, errs)
	})
}

func TestSubscribeWithTimeout_TimerFiresOnce(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := &fakeSource{}
		var snapshots []string
		var errs []error

		guard.SubscribeWithTimeout(src.source,
			func(s string) { snapshots = append(snapshots, s) },
			func(err error) { errs = append(errs, err) },
			100*time.Millisecond, "list items")

		time.Sleep(time.Second)

		require.Len(t, errs, 1)
		assert.ErrorContains(t, errs[0], domain.ErrLoadTimeout.Error())
		assert.True(t, src.unsubbed, "timeout must tear the subscription down")

		// A snapshot trickling in after the timeout is discarded.
		src.onData("late")
		assert.Empty(t, snapshots)
	})
}

func TestSubscribeWithTimeout_SourceErrorSettles(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := &fakeSource{}
		var errs []error

		guard.SubscribeWithTimeout(src.source,
			func(string) {},
			func(err error) { errs = append(errs, err) },
			100*time.Millisecond, "list items")

		streamErr := zerr.New("stream broken")
		src.onError(streamErr)

		// The timer must not add a second error afterwards.
		time.Sleep(time.Second)

		require.Len(t, errs, 1)
		assert.ErrorIs(t, errs[0], streamErr)
		assert.True(t, src.unsubbed)
	})
}

func TestSubscribeWithTimeout_EstablishFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := &fakeSource{establish: zerr.New("no connection")}
		var errs []error

		unsub := guard.SubscribeWithTimeout(src.source,
			func(string) {},
			func(err error) { errs = append(errs, err) },
			100*time.Millisecond, "list items")

		require.Len(t, errs, 1)

		// The timer is cancelled; no second error later.
		time.Sleep(time.Second)
		assert.Len(t, errs, 1)

		unsub() // no-op handle
	})
}

func TestSubscribeWithTimeout_TeardownIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		src := &fakeSource{}
		var errs []error

		unsub := guard.SubscribeWithTimeout(src.source,
			func(string) {},
			func(err error) { errs = append(errs, err) },
			100*time.Millisecond, "list items")

		unsub()
		unsub()
		assert.True(t, src.unsubbed)

		// Teardown before the timer fires suppresses the timeout error.
		time.Sleep(time.Second)
		assert.Empty(t, errs)
	})
}
