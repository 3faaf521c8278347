package db

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petstore/internal/config"
	"petstore/internal/store/memory"
)

func TestOpen_Memory(t *testing.T) {
	st, err := Open(context.Background(), config.Config{DBUrl: "memory://"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, st)
	assert.NoError(t, st.Close(context.Background()))
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), config.Config{DBUrl: "postgres://localhost/petstore"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"postgres"`)
}

func TestOpen_InvalidMySQLDSN(t *testing.T) {
	_, err := Open(context.Background(), config.Config{DBUrl: "mysql://not a dsn"}, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse mysql dsn")
}
