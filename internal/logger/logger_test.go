package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWithWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, false)
	t.Cleanup(func() { Init(false) })

	Debug("hidden debug")
	Info("listing done", "count", 3)
	Warn("download failed", "path", "/a.jpg")

	out := buf.String()
	assert.NotContains(t, out, "hidden debug")
	assert.Contains(t, out, "listing done")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "path=/a.jpg")
}

func TestInitWithWriter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, true)
	t.Cleanup(func() { Init(false) })

	Debug("tick", "index", 1)
	With("task", "load-1").Error("authorization failed")

	out := buf.String()
	assert.Contains(t, out, "tick")
	assert.Contains(t, out, "task=load-1")
	assert.Contains(t, out, "level=ERROR")
}
