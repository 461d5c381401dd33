package dispatcher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/command"
	"herald/pkg/parser"
)

func newCountingService(t *testing.T) (*command.Service, *sync.Map) {
	t.Helper()
	var calls sync.Map
	registry := command.NewRegistry(command.TreeConfig{})
	require.NoError(t, registry.Register(
		&command.Command{
			Path:       []string{"greet"},
			Components: []*command.Component{command.RequiredComponent("who", parser.NewStringParser(parser.StringSingle))},
			Handler: func(ctx *command.Context) error {
				calls.Store(command.MustGet[string](ctx, "who"), true)
				return nil
			},
		},
		&command.Command{
			Path:    []string{"boom"},
			Handler: func(_ *command.Context) error { panic("kaboom") },
		},
	))
	return command.NewService(command.ServiceConfig{Registry: registry}), &calls
}

func TestDispatchSynchronous(t *testing.T) {
	svc, calls := newCountingService(t)
	d := New(svc, 2, 8)

	require.NoError(t, d.Dispatch("alice", "greet bob"))
	_, ran := calls.Load("bob")
	assert.True(t, ran)

	err := d.Dispatch("alice", "greet")
	var argErr *command.ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestSubmitRequiresRunningPool(t *testing.T) {
	svc, _ := newCountingService(t)
	d := New(svc, 1, 1)

	err := d.Submit("alice", "greet bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}

func TestSubmitDeliversResults(t *testing.T) {
	svc, calls := newCountingService(t)
	d := New(svc, 4, 16)
	d.Start(context.Background())

	names := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, n := range names {
		require.NoError(t, d.Submit("alice", "greet "+n))
	}
	d.Stop()

	var got int
	for res := range d.Results() {
		assert.NoError(t, res.Err)
		assert.Equal(t, "alice", res.Sender)
		got++
	}
	assert.Equal(t, len(names), got)

	for _, n := range names {
		_, ran := calls.Load(n)
		assert.True(t, ran, "handler ran for %s", n)
	}
}

func TestSubmitReportsFailuresAndPanics(t *testing.T) {
	svc, _ := newCountingService(t)
	d := New(svc, 1, 8)
	d.Start(context.Background())

	require.NoError(t, d.Submit("alice", "boom"))
	require.NoError(t, d.Submit("alice", "nosuch"))
	d.Stop()

	var byLine = map[string]error{}
	for res := range d.Results() {
		byLine[res.Line] = res.Err
	}

	var execErr *command.ExecutionError
	require.ErrorAs(t, byLine["boom"], &execErr)
	var noMatch *command.NoMatchingCommandError
	require.ErrorAs(t, byLine["nosuch"], &noMatch)
}

func TestStopIsIdempotentAndDrains(t *testing.T) {
	svc, _ := newCountingService(t)
	d := New(svc, 2, 4)
	d.Start(context.Background())

	require.NoError(t, d.Submit("alice", "greet bob"))
	d.Stop()
	d.Stop()

	// The results channel is closed after draining.
	select {
	case _, open := <-d.Results():
		if open {
			_, open = <-d.Results()
			assert.False(t, open)
		}
	case <-time.After(time.Second):
		t.Fatal("results channel did not drain")
	}
}
