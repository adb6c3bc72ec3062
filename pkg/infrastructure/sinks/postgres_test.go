package sinks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresSink_InvalidDSN(t *testing.T) {
	_, err := NewPostgresSink(context.Background(), "://not-a-dsn", "demand_history", "run-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid Postgres DSN")
}
