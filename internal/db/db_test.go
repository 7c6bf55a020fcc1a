package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InvalidURL(t *testing.T) {
	db, err := Connect(context.Background(), "not-a-valid-dsn://///")
	require.Error(t, err)
	assert.Nil(t, db)
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, func() { db.Close() })
}

func TestNullIfEmpty(t *testing.T) {
	assert.Nil(t, nullIfEmpty(""))

	got := nullIfEmpty("boom")
	require.NotNil(t, got)
	assert.Equal(t, "boom", *got)
}
