package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffect_Has(t *testing.T) {
	mask := EffectBold | EffectUnderline
	assert.True(t, mask.Has(EffectBold))
	assert.True(t, mask.Has(EffectUnderline))
	assert.False(t, mask.Has(EffectDim))
	assert.True(t, mask.Has(EffectBold|EffectUnderline))
}

func TestEffect_String(t *testing.T) {
	assert.Equal(t, "none", Effect(0).String())
	assert.Equal(t, "Bold", EffectBold.String())
	assert.Equal(t, "Bold|Underline", (EffectBold | EffectUnderline).String())
}
