package sibylerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := sibylerr.Wrap(sibylerr.Transient, "graph write failed", cause)

	assert.True(t, errors.Is(err, sibylerr.Transient))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, sibylerr.Permanent))
	assert.Equal(t, "graph write failed: connection reset", err.Error())
}

func TestWrap_NilCause(t *testing.T) {
	err := sibylerr.Wrap(sibylerr.Conflict, "spawn already in flight", nil)

	assert.True(t, errors.Is(err, sibylerr.Conflict))
	assert.Equal(t, "spawn already in flight", err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	inner := sibylerr.Wrap(sibylerr.NotFound, "agent record not found", nil)
	outer := fmt.Errorf("resume failed: %w", inner)

	require.True(t, errors.Is(outer, sibylerr.NotFound))
}

func TestRetryable_TransientOnly(t *testing.T) {
	assert.True(t, sibylerr.Retryable(sibylerr.Wrap(sibylerr.Transient, "timeout", nil)))

	for _, kind := range []sibylerr.Kind{
		sibylerr.NotFound, sibylerr.Conflict, sibylerr.GateFailure,
		sibylerr.ApprovalTimeout, sibylerr.ApprovalCancelled,
		sibylerr.ResourceExhausted, sibylerr.Permanent,
	} {
		assert.False(t, sibylerr.Retryable(sibylerr.Wrap(kind, "x", nil)), kind.Error())
	}
	assert.False(t, sibylerr.Retryable(errors.New("unclassified")))
}
