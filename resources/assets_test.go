package resources

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_LoadsEmbeddedIcons(t *testing.T) {
	for _, name := range []string{IconTomato, IconRest, IconPause, IconPlay, IconReset} {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, resource.Name())
		assert.True(t, strings.HasPrefix(string(resource.Content()), "<svg"), name)
	}
}

func TestIcon_IsCached(t *testing.T) {
	first := MustIcon(IconTomato)
	second := MustIcon(IconTomato)
	assert.Same(t, first, second)
}

func TestIcon_Missing(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.svg") })
}
