package tidyjson

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/tidyjson/internal/palette"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]palette.Theme{
	paletteDefaultName: palette.VSCode,
	"vscode":           palette.VSCode,
	"jq":               palette.JQ,
	"nord":             palette.Nord,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette returns the Palette for the given name, defaulting to
// "default" when name is empty. The special name "none" disables colouring.
// When enableColor is false a no-color palette is returned regardless of
// the selection, but the name is still validated.
func ResolvePalette(name string, renderer *lipgloss.Renderer, enableColor bool) (Palette, error) {
	key := paletteDefaultName
	if strings.TrimSpace(name) != "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}

	if key == paletteNoneName {
		return NoColorPalette(renderer), nil
	}

	theme, ok := paletteRegistry[key]
	if !ok {
		return Palette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(renderer), nil
	}
	return themedPalette(renderer, theme), nil
}
