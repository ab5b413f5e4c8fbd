package ansiterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveGoto(t *testing.T) {
	assert.Equal(t, "\x1b[1;1H", moveGoto(0, 0), "Goto is 0-based, the wire format is 1-based")
	assert.Equal(t, "\x1b[6;11H", moveGoto(10, 5))
}

func TestMoveDirectional(t *testing.T) {
	assert.Equal(t, "\x1b[3A", moveUp(3))
	assert.Equal(t, "\x1b[3B", moveDown(3))
	assert.Equal(t, "\x1b[3C", moveRight(3))
	assert.Equal(t, "\x1b[3D", moveLeft(3))

	assert.Equal(t, "", moveUp(0), "n <= 0 is a no-op sequence")
	assert.Equal(t, "", moveLeft(-1))
}

func TestSetFgBg(t *testing.T) {
	assert.Equal(t, "\x1b[38;5;1m", setFg("5;1"))
	assert.Equal(t, "\x1b[48;2;10;20;30m", setBg("2;10;20;30"))
}
