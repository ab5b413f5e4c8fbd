package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_AnsiSpec_NamedColors(t *testing.T) {
	spec, ok := DarkRed.AnsiSpec()
	assert.True(t, ok, "DarkRed should produce an ansi spec")
	assert.Equal(t, "5;1", spec)

	spec, ok = Reset.AnsiSpec()
	assert.False(t, ok, "Reset has no spec fragment, it uses the 39/49 shortcut")
	assert.Equal(t, "", spec)
}

func TestColor_AnsiSpec_RGB(t *testing.T) {
	c := RGB(10, 20, 30)
	spec, ok := c.AnsiSpec()
	assert.True(t, ok)
	assert.Equal(t, "2;10;20;30", spec)
}

func TestColor_AnsiSpec_AnsiValue(t *testing.T) {
	c := AnsiValue(200)
	spec, ok := c.AnsiSpec()
	assert.True(t, ok)
	assert.Equal(t, "5;200", spec)
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "Reset", Reset.String())
	assert.Equal(t, "DarkGreen", DarkGreen.String())
	assert.Equal(t, "Rgb(1,2,3)", RGB(1, 2, 3).String())
	assert.Equal(t, "AnsiValue(42)", AnsiValue(42).String())
}
