package main

import (
	"testing"

	"quickfix/config"
	"quickfix/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewProcessedCache_Disabled(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.EnableProcessedCache = false

	processed, client := newProcessedCache(zap.NewNop())
	assert.Nil(t, processed)
	assert.Nil(t, client)
}

func TestNewProcessedCache_RedisDownKeepsRunning(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.EnableProcessedCache = true
	config.AppConfig.RedisAddr = "127.0.0.1:1"
	utils.CacheClient = nil

	processed, client := newProcessedCache(zap.NewNop())
	assert.Nil(t, processed)
	assert.Nil(t, client)
}
