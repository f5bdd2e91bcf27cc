package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hangProvider blocks until its context ends.
type hangProvider struct{}

func (hangProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (hangProvider) ModelID() string { return "hang" }

func TestTimeout_BoundsHungProvider(t *testing.T) {
	p := WithTimeout(hangProvider{}, 20*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, "hang", p.ModelID())
}

func TestTimeout_PassesThroughResponses(t *testing.T) {
	mock := NewMockProvider(okResp)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
}

func TestTimeout_ZeroIsDisabled(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, mock, WithTimeout(mock, 0))
}

func TestNewProvider_AppliesConfiguredTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	cfg.Timeout = 5 * time.Second

	p, err := NewProvider(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	tp, ok := p.(*TimeoutProvider)
	require.True(t, ok, "outermost provider is %T", p)
	assert.Equal(t, 5*time.Second, tp.timeout)
}
