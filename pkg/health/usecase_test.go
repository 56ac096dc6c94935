package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/expense-assistant/pkg/health/checkers"
)

type staticClient bool

func (s staticClient) Configured() bool { return bool(s) }

type failing struct{}

func (failing) Name() string                    { return "failing" }
func (failing) Check(ctx context.Context) error { return errors.New("down") }

func TestReady(t *testing.T) {
	ok := NewService(checkers.NewCredentialChecker("openrouter", staticClient(true)))
	require.NoError(t, ok.Ready(context.Background()))

	missing := NewService(checkers.NewCredentialChecker("openrouter", staticClient(false)))
	err := missing.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openrouter")

	require.Error(t, NewService(checkers.NewCredentialChecker("openrouter", staticClient(true)), failing{}).Ready(context.Background()))
	require.NoError(t, NewService().Ready(context.Background()))
}
