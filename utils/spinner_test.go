package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_NotATerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	s := NewSpinner(&buf, "working", time.Millisecond)
	s.Start()
	s.StopMsg = "done"
	s.Stop()

	assert.Equal(t, "done\n", buf.String())
}

func TestSpinner_StopWithoutMessage(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond)
	s.Start()
	s.Stop()
	s.Stop()

	assert.Empty(t, buf.String())
}

func TestSpinner_Animate(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner(&buf, "working", time.Millisecond)
	s.animate = true
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.StopMsg = "done"
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "working")
	assert.Contains(t, out, "done\n")
}
