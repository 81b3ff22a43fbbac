package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/fuelfleet/internal/config"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func testConfig() *config.Config {
	return &config.Config{
		Address:            "127.0.0.1:0",
		Database:           config.MemoryDatabase,
		LogLvl:             "error",
		LogFormat:          "json",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		QuotaResetSchedule: "0 0 1 * *",
		QuotaPolicy:        "hard",
		FuelPolicy:         "hard",
		CapacityPolicy:     "soft",
		OrderTankChange:    "legacy",
		ReconcileWorkers:   2,
	}
}

func (s *ApplicationSuite) TestStart_MemoryStore() {
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, testConfig()))
	s.True(s.app.ready)
	s.NotNil(s.app.api)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_RedisLock() {
	mr := miniredis.RunT(s.T())
	cfg := testConfig()
	cfg.RedisAddr = mr.Addr()
	ctx, cancel := context.WithCancel(context.Background())

	s.Require().NoError(s.app.start(ctx, cfg))
	_, err := s.app.srv.Jobs.ResetQuotas(ctx)
	s.NoError(err)

	cancel()
	s.NoError(s.app.Wait(ctx, cancel))
}

func (s *ApplicationSuite) TestStart_InvalidConfig() {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"log level", func(c *config.Config) { c.LogLvl = "loud" }, "can't init logger"},
		{"policy", func(c *config.Config) { c.QuotaPolicy = "maybe" }, "invalid balance policy"},
		{"schedule", func(c *config.Config) { c.QuotaResetSchedule = "every day" }, "can't schedule jobs"},
		{"redis down", func(c *config.Config) { c.RedisAddr = "127.0.0.1:1" }, "can't connect to redis"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := testConfig()
			tt.mutate(cfg)
			err := New().start(context.Background(), cfg)
			s.Require().Error(err)
			s.Contains(err.Error(), tt.errMsg)
		})
	}
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}
