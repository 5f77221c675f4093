package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := NewScheduler(NewMockAuthCodePurger(ctrl))

	err := s.Start(ctx)

	assert.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestStartInvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := NewScheduler(NewMockAuthCodePurger(ctrl))
	s.schedule = "not a cron spec"

	err := s.Start(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "can't schedule auth code purge")
}
