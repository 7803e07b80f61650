package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { InitWithWriter("test", &bytes.Buffer{}) })
	return &buf
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestFromContext(t *testing.T) {
	buf := captureJSON(t)

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, "user_1")
	ctx = WithProcedure(ctx, "reviews.create")

	CtxInfo(ctx, "hello", "k", "v")

	rec := lastRecord(t, buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "user_1", rec["user_id"])
	assert.Equal(t, "reviews.create", rec["procedure"])
	assert.Equal(t, "v", rec["k"])

	CtxWithError(context.Background(), "failed", errors.New("boom"))
	rec = lastRecord(t, buf)
	assert.Equal(t, "boom", rec["error"])
	assert.Nil(t, rec["request_id"])
}

func TestGormLogger_Trace(t *testing.T) {
	buf := captureJSON(t)
	l := NewGormLogger("production")
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now(), sql, errors.New("syntax error"))
	rec := lastRecord(t, buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "SELECT 1", rec["query"])

	l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	rec = lastRecord(t, buf)
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "slow database operation", rec["msg"])

	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sql, errors.New("ignored"))
	assert.Empty(t, buf.String())
}
