package logging_test

import (
	"testing"

	"github.com/arborpath/suptop/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefault_IsNonNilNoOpInitially(t *testing.T) {
	require.NotNil(t, logging.Default())
}

func TestSetDefault_NilIsNoOp(t *testing.T) {
	before := logging.Default()
	logging.SetDefault(nil)
	require.Same(t, before, logging.Default())
}

func TestOrDefault_PrefersExplicitLogger(t *testing.T) {
	explicit := zap.NewNop().Sugar()
	require.Same(t, explicit, logging.OrDefault(explicit))
	require.Same(t, logging.Default(), logging.OrDefault(nil))
}
