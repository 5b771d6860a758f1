package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Icon("lucide--dog icon-xl", "ProductPuppy").Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `class="icon icon-xl"`)
	assert.Contains(t, out, `data-icon="lucide:dog"`)
	assert.Contains(t, out, `aria-label="ProductPuppy"`)
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg"`)

	buf.Reset()
	require.NoError(t, Icon("lucide--sun", "").Render(&buf))
	assert.Contains(t, buf.String(), `aria-hidden="true"`)
}

func TestConvertIconName(t *testing.T) {
	assert.Equal(t, "lucide:chevron-down", convertIconName("lucide--chevron-down bounce"))
	assert.Equal(t, "", convertIconName("   "))
	assert.Equal(t, "bounce", extractSizeClasses("lucide--chevron-down bounce"))
}

func TestIconSVGBundlesEveryUsedIcon(t *testing.T) {
	for _, name := range []string{"brain", "chevron-down", "dog", "filter", "globe", "heart", "message-square", "moon", "search", "sun", "target"} {
		assert.True(t, strings.HasPrefix(iconSVG("lucide:"+name), "<svg"), name)
	}

	assert.Empty(t, iconSVG("lucide:unknown"))
	assert.Empty(t, iconSVG("lucide:../shared"))
	assert.Empty(t, iconSVG("mdi:dog"))
}
