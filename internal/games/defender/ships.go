package defender

import (
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/registry"
)

func init() {
	registry.Register(registry.Ship{ID: 1, Name: "Falcon", Glyph: 'A', Color: core.ColorBrightCyan})
	registry.Register(registry.Ship{ID: 2, Name: "Viper", Glyph: 'V', Color: core.ColorGreen})
	registry.Register(registry.Ship{ID: 3, Name: "Nova", Glyph: '*', Color: core.ColorMagenta})
}
