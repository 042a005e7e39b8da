package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(FS, Dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	goose.SetBaseFS(FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })
	collected, err := goose.CollectMigrations(Dir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, collected, 1)
	assert.Equal(t, int64(1), collected[0].Version)

	body, err := fs.ReadFile(FS, Dir+"/00001_create_sleep_logs.sql")
	require.NoError(t, err)
	sql := string(body)
	assert.True(t, strings.HasPrefix(sql, "-- +goose Up"))
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "CONSTRAINT uk_sleep_logs_user_date UNIQUE (user_id, sleep_date)")
	assert.Contains(t, sql, "(user_id, sleep_date DESC)")
}

func TestGooseLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := &gooseLogger{log: zap.New(core).Sugar()}

	l.Printf("OK   %s (%s)", "00001_create_sleep_logs.sql", "12ms")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "OK   00001_create_sleep_logs.sql (12ms)", logs.All()[0].Message)
}
