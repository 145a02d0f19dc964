package operation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

type fakeOperation struct {
	name     string
	err      error
	executed atomic.Int32
}

func (f *fakeOperation) Name() string {
	return f.name
}

func (f *fakeOperation) Execute(ctx context.Context) error {
	f.executed.Add(1)
	return f.err
}

func TestRunner_Run_Sync(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger, false)

	a := &fakeOperation{name: "a"}
	b := &fakeOperation{name: "b"}

	require.NoError(t, runner.Run(context.Background(), a, b))
	assert.Equal(t, int32(1), a.executed.Load())
	assert.Equal(t, int32(1), b.executed.Load())
}

func TestRunner_Run_SyncStopsOnError(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger, false)

	a := &fakeOperation{name: "a", err: errors.New("boom")}
	b := &fakeOperation{name: "b"}

	err := runner.Run(context.Background(), a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing a")
	assert.Equal(t, int32(0), b.executed.Load())
}

func TestRunner_Run_Async(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger, true)

	a := &fakeOperation{name: "a"}
	b := &fakeOperation{name: "b"}

	require.NoError(t, runner.Run(context.Background(), a, b))
	assert.Equal(t, int32(1), a.executed.Load())
	assert.Equal(t, int32(1), b.executed.Load())
}

func TestRunner_Run_AsyncPropagatesError(t *testing.T) {
	logger := zerolog.Nop()
	runner := NewRunner(&logger, true)

	a := &fakeOperation{name: "a", err: errors.New("boom")}

	err := runner.Run(context.Background(), a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
