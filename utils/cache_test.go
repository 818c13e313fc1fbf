package utils

import (
	"testing"

	"quickfix/config"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheClient_RefusedConnection(t *testing.T) {
	prev := config.AppConfig.RedisAddr
	t.Cleanup(func() { config.AppConfig.RedisAddr = prev })
	config.AppConfig.RedisAddr = "127.0.0.1:1"
	CacheClient = nil

	client, err := GetCacheClient()
	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Nil(t, CacheClient)
}
