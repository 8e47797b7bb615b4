package availabledate

import (
	"context"
	"testing"

	"go-clinic/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSweeperValidatesSchedule(t *testing.T) {
	svc := newDateService(newFakeDateRepo())

	_, err := NewSweeper(svc, &config.Config{SweepSchedule: "0 3 * * *"}, zap.NewNop())
	assert.NoError(t, err)

	_, err = NewSweeper(svc, &config.Config{SweepSchedule: "every day at three"}, zap.NewNop())
	assert.Error(t, err)
}

func TestSweeperStartStop(t *testing.T) {
	svc := newDateService(newFakeDateRepo())
	s, err := NewSweeper(svc, &config.Config{SweepSchedule: "0 3 * * *"}, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop())
}

func TestSweeperStopWithoutStart(t *testing.T) {
	svc := newDateService(newFakeDateRepo())
	s, err := NewSweeper(svc, &config.Config{SweepSchedule: "0 3 * * *"}, zap.NewNop())
	require.NoError(t, err)

	assert.NoError(t, s.Stop())
}
