package providers

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
	"github.com/preston-bernstein/live-arena-service/internal/teststubs"
)

func okSnapshot() matches.Snapshot {
	return matches.Snapshot{Success: true, Msg: "Success", Data: matches.Data{T1: []matches.Match{{Gmid: 1}}}}
}

func TestRateLimitRetryPassesThroughSuccess(t *testing.T) {
	stub := teststubs.NewStubProvider(okSnapshot(), nil)
	rec := metrics.NewRecorder()
	p := NewRateLimitRetryProvider(stub, slog.Default(), rec, "rapidapi")

	snap, err := p.FetchMatchList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
	assert.EqualValues(t, 1, stub.Calls.Load())
	assert.Equal(t, 1, rec.ProviderCalls("rapidapi"))
}

func TestRateLimitRetryRetriesOnceOn429(t *testing.T) {
	stub := &teststubs.StubProvider{Script: func(call int) (matches.Snapshot, error) {
		if call == 1 {
			return matches.Snapshot{}, &RateLimitError{StatusCode: 429}
		}
		return okSnapshot(), nil
	}}
	rec := metrics.NewRecorder()
	p := NewRateLimitRetryProvider(stub, nil, rec, "rl")

	snap, err := p.FetchMatchList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Len())
	assert.EqualValues(t, 2, stub.Calls.Load())
	assert.Equal(t, 1, rec.RateLimitHits("rl"))
	assert.Equal(t, 2, rec.ProviderCalls("rl"))
	assert.Equal(t, 1, rec.ProviderErrors("rl"))
}

func TestRateLimitRetryGivesUpAfterSecond429(t *testing.T) {
	stub := teststubs.NewStubProvider(matches.Snapshot{}, &RateLimitError{StatusCode: 429})
	rec := metrics.NewRecorder()
	p := NewRateLimitRetryProvider(stub, nil, rec, "rl")

	_, err := p.FetchMatchList(context.Background())
	_, limited := AsRateLimitError(err)
	assert.True(t, limited, "expected rate limit error, got %v", err)
	assert.EqualValues(t, 2, stub.Calls.Load(), "exactly one retry")
	assert.Equal(t, 2, rec.RateLimitHits("rl"))
}

func TestRateLimitRetryDoesNotRetryOtherErrors(t *testing.T) {
	boom := errors.New("boom")
	stub := teststubs.NewStubProvider(matches.Snapshot{}, boom)
	p := NewRateLimitRetryProvider(stub, slog.Default(), nil, "")

	_, err := p.FetchMatchList(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 1, stub.Calls.Load())
}

func TestRateLimitRetrySkipsRetryWhenContextDone(t *testing.T) {
	stub := teststubs.NewStubProvider(matches.Snapshot{}, &RateLimitError{StatusCode: 429})
	p := NewRateLimitRetryProvider(stub, nil, nil, "rl")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchMatchList(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.EqualValues(t, 1, stub.Calls.Load())
}

func TestRateLimitRetryNilInner(t *testing.T) {
	p := NewRateLimitRetryProvider(nil, nil, nil, "").(*rateLimitRetryProvider)
	assert.Equal(t, fallbackProviderName, p.providerName)

	_, err := p.FetchMatchList(context.Background())
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
