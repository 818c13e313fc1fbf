package utils

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHealthChecks(t *testing.T) {
	status := RunHealthChecks(context.Background(), map[string]HealthCheck{
		"mongo": func(ctx context.Context) error { return nil },
		"redis": func(ctx context.Context) error { return errors.New("dial tcp: refused") },
	})

	assert.True(t, status.Services["mongo"])
	assert.False(t, status.Services["redis"])
	assert.False(t, status.Healthy())
	assert.Equal(t, status, GetHealthStatus())

	ok := RunHealthChecks(context.Background(), map[string]HealthCheck{
		"mongo": func(ctx context.Context) error { return nil },
	})
	assert.True(t, ok.Healthy())
}
