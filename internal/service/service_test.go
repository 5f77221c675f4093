package service

import (
	"testing"
	"time"

	"github.com/gardenus/matchledger/internal/config"
	"github.com/gardenus/matchledger/internal/gateway"
	"github.com/gardenus/matchledger/internal/pg"
	"github.com/gardenus/matchledger/internal/repo"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		CodeTTL:   5 * time.Minute,
	}
	txManager := pg.NewMockTXManager(ctrl)
	gw := gateway.NewMockClient(ctrl)

	services := New(cfg, &repo.Repositories{}, txManager, gw)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.MatchService)
	assert.NotNil(t, services.FlowerService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.ChatService)
	assert.NotNil(t, services.Notifier)
	assert.NotNil(t, services.JWTService)
}
