package cannoli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

func TestInitCannoliTheme(t *testing.T) {
	theme := InitCannoliTheme("")
	assert.Equal(t, DefaultFontPath, theme.FontPath)
	assert.Equal(t, model.HexColor(0xFFFFFF), theme.TextColor)

	theme = InitCannoliTheme("/tmp/font.ttf")
	assert.Equal(t, "/tmp/font.ttf", theme.FontPath)
}
