package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Label, Small, Title} {
		face, ok := name.Face()
		require.True(t, ok, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}

	small, _ := Small.Face()
	title, _ := Title.Face()
	assert.Less(t, small.Metrics().Height.Ceil(), title.Metrics().Height.Ceil())
}

func TestLoadFontWithSize_Invalid(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)

	assert.Error(t, err)
	_, ok := FontName("broken").Face()
	assert.False(t, ok)
}
