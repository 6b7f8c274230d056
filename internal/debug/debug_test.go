package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, "FPS: 25", fpsText(25))
	assert.Equal(t, "Mem: 1.50 MiB", memText(3*1024*1024/2))
	assert.Equal(t, "Mem: 0.00 MiB", memText(0))
}

func TestRefresh(t *testing.T) {
	assert.True(t, refresh(0, "FPS: 60"))
	assert.False(t, refresh(1, "FPS: 60"))
	assert.True(t, refresh(updateInterval, "FPS: 60"))
	// Text is computed the first frame it is shown, whatever the frame count.
	assert.True(t, refresh(7, ""))
}

func TestNewHidesEverything(t *testing.T) {
	d := New()
	assert.False(t, d.ShowFPS)
	assert.False(t, d.ShowMemAlloc)
	assert.False(t, d.ShowStatus)
}
