package cron

import (
	"testing"

	"coursehub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerStartRejectsBadCronExpression(t *testing.T) {
	config.AppConfig = &config.Config{ReconcileCron: "not a cron expression"}

	s := NewScheduler()
	assert.Error(t, s.Start())
}

func TestSchedulerStartAndStop(t *testing.T) {
	config.AppConfig = &config.Config{ReconcileCron: "30 3 * * *"}

	s := NewScheduler()
	require.NoError(t, s.Start())
	s.Stop()
}
