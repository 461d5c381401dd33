package command

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herald/pkg/input"
)

func TestRegistryRegisterPublishes(t *testing.T) {
	r := NewRegistry(TreeConfig{})
	before := r.Version()

	require.NoError(t, r.Register(&Command{Path: []string{"ping"}, Handler: noopHandler}))

	assert.Equal(t, before+1, r.Version())
	assert.Len(t, r.Commands(), 1)

	_, err := r.Tree().Resolve(NewContext("alice", false), input.New("ping"), nil)
	assert.NoError(t, err)
}

func TestRegistryFailedRegisterKeepsOldTree(t *testing.T) {
	r := NewRegistry(TreeConfig{})
	require.NoError(t, r.Register(&Command{Path: []string{"ping"}, Handler: noopHandler}))
	version := r.Version()

	err := r.Register(&Command{Path: []string{"broken"}})
	require.Error(t, err)

	// The bad batch published nothing; the old tree keeps serving.
	assert.Equal(t, version, r.Version())
	assert.Len(t, r.Commands(), 1)
	_, err = r.Tree().Resolve(NewContext("alice", false), input.New("ping"), nil)
	assert.NoError(t, err)
}

func TestRegistryReplaceSwapsWholesale(t *testing.T) {
	r := NewRegistry(TreeConfig{})
	require.NoError(t, r.Register(
		&Command{Path: []string{"ping"}, Handler: noopHandler},
		&Command{Path: []string{"ban"}, Handler: noopHandler},
	))

	require.NoError(t, r.Replace([]*Command{
		{Path: []string{"pong"}, Handler: noopHandler},
	}))

	cmds := r.Commands()
	require.Len(t, cmds, 1)
	assert.Equal(t, "pong", cmds[0].FullName())

	_, err := r.Tree().Resolve(NewContext("alice", false), input.New("ping"), nil)
	var noMatch *NoMatchingCommandError
	assert.ErrorAs(t, err, &noMatch)
}

func TestRegistrySnapshotSurvivesLaterPublish(t *testing.T) {
	r := NewRegistry(TreeConfig{})
	require.NoError(t, r.Register(&Command{Path: []string{"ping"}, Handler: noopHandler}))

	snapshot := r.Tree()
	require.NoError(t, r.Replace([]*Command{{Path: []string{"pong"}, Handler: noopHandler}}))

	// A walker holding the old snapshot still resolves against it.
	_, err := snapshot.Resolve(NewContext("alice", false), input.New("ping"), nil)
	assert.NoError(t, err)
}

func TestRegistryConcurrentResolveAndRegister(t *testing.T) {
	r := NewRegistry(TreeConfig{})
	require.NoError(t, r.Register(&Command{Path: []string{"ping"}, Handler: noopHandler}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				// Either tree generation must answer "ping" cleanly.
				_, err := r.Tree().Resolve(NewContext("alice", false), input.New("ping"), nil)
				assert.NoError(t, err)
			}
		}()
	}
	for i := 0; i < 50; i++ {
		require.NoError(t, r.Replace([]*Command{
			{Path: []string{"ping"}, Handler: noopHandler},
			{Path: []string{"ban"}, Handler: noopHandler},
		}))
	}
	wg.Wait()
}
