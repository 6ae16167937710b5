package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	p := New(zerolog.Nop())

	p.Record("sweep", 30*time.Millisecond)
	p.Record("sweep", 10*time.Millisecond)
	p.Record("sweep", 20*time.Millisecond)

	tracker, ok := p.Operation("sweep")
	require.True(t, ok)
	assert.Equal(t, "sweep", tracker.Name())
	assert.Equal(t, int64(3), tracker.Count())
	assert.Equal(t, 60*time.Millisecond, tracker.Total())
	assert.Equal(t, 10*time.Millisecond, tracker.Min())
	assert.Equal(t, 30*time.Millisecond, tracker.Max())
	assert.Equal(t, 20*time.Millisecond, tracker.Average())

	_, ok = p.Operation("export")
	assert.False(t, ok)
}

func TestStartOperation(t *testing.T) {
	p := New(zerolog.Nop())

	done := p.StartOperation("export")
	time.Sleep(time.Millisecond)
	done()

	tracker, ok := p.Operation("export")
	require.True(t, ok)
	assert.Equal(t, int64(1), tracker.Count())
	assert.GreaterOrEqual(t, tracker.Total(), time.Millisecond)
	assert.GreaterOrEqual(t, p.Uptime(), tracker.Total())
}

func TestAverageEmpty(t *testing.T) {
	assert.Zero(t, (&TimeTracker{}).Average())
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	p := New(zerolog.New(&buf).Level(zerolog.InfoLevel))

	p.Record("sweep", time.Second)
	p.Record("export", time.Millisecond)
	p.Report()

	out := buf.String()
	assert.Contains(t, out, `"message":"runtime profile"`)
	assert.Contains(t, out, `"operation":"sweep"`)
	assert.Contains(t, out, `"operation":"export"`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte(`"operation":"sweep"`)), bytes.Index(buf.Bytes(), []byte(`"operation":"export"`)))
}

func TestSnapshot(t *testing.T) {
	p := New(zerolog.Nop())
	before := p.Snapshot()
	after := p.Snapshot()
	assert.Greater(t, after.NumGC, before.NumGC)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KB", formatBytes(1024))
	assert.Equal(t, "1.5 MB", formatBytes(1536*1024))
}
