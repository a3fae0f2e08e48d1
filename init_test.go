package tictac

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The tensor dependency chain refuses to initialise on new runtimes unless either a recent
// assume-no-moving-gc is selected or this override is set. Only the former is acceptable.
const movingGCOverride = "ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH"

func TestStartsWithoutMovingGCOverride(t *testing.T) {
	_, set := os.LookupEnv(movingGCOverride)
	require.False(t, set, "%s must not be needed to run the engine", movingGCOverride)

	e := New(testConfig(10, 3))
	next, err := e.Reply(e.Initial())
	require.NoError(t, err)
	assert.Equal(t, 1, next.MoveNumber())

	Xs, _, err := PrepareExamples(Examples(e.Values(), nil))
	require.NoError(t, err)
	assert.Equal(t, e.Values().Len(), Xs.Shape()[0])
}
