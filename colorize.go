package tidyjson

import (
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/tidyjson/internal/palette"
)

// Palette configures the lipgloss styles applied to each JSON token class.
type Palette struct {
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	True        lipgloss.Style
	False       lipgloss.Style
	Null        lipgloss.Style
	Brackets    lipgloss.Style
	Punctuation lipgloss.Style
}

// DefaultPalette returns the default theme bound to the given renderer. The
// renderer governs how colours degrade on limited terminals.
func DefaultPalette(renderer *lipgloss.Renderer) Palette {
	return themedPalette(renderer, palette.VSCode)
}

// NoColorPalette disables all styling while keeping the colorizer path
// shared with the styled variants.
func NoColorPalette(renderer *lipgloss.Renderer) Palette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	base := renderer.NewStyle()
	return Palette{
		Key:         base,
		String:      base,
		Number:      base,
		True:        base,
		False:       base,
		Null:        base,
		Brackets:    base,
		Punctuation: base,
	}
}

func themedPalette(renderer *lipgloss.Renderer, t palette.Theme) Palette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	return Palette{
		Key:         renderer.NewStyle().Foreground(lipgloss.Color(t.Key)).Bold(true),
		String:      renderer.NewStyle().Foreground(lipgloss.Color(t.String)),
		Number:      renderer.NewStyle().Foreground(lipgloss.Color(t.Number)),
		True:        renderer.NewStyle().Foreground(lipgloss.Color(t.Bool)),
		False:       renderer.NewStyle().Foreground(lipgloss.Color(t.Bool)),
		Null:        renderer.NewStyle().Foreground(lipgloss.Color(t.Null)).Faint(true),
		Brackets:    renderer.NewStyle().Foreground(lipgloss.Color(t.Brackets)).Bold(true),
		Punctuation: renderer.NewStyle().Foreground(lipgloss.Color(t.Punctuation)),
	}
}

// Colorize walks already-indented JSON output and applies the palette
// styles. Object keys are distinguished from string values by tracking the
// enclosing container kind and comma/colon transitions.
func Colorize(src []byte, pal Palette) string {
	var sb strings.Builder
	sb.Grow(len(src) + len(src)/2)

	type frame struct {
		kind      byte
		expectKey bool
	}
	stack := make([]frame, 0, 8)
	top := func() *frame {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1]
	}

	for i := 0; i < len(src); {
		c := src[i]
		switch c {
		case '{', '[':
			stack = append(stack, frame{kind: c, expectKey: c == '{'})
			sb.WriteString(pal.Brackets.Render(string(c)))
			i++
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			sb.WriteString(pal.Brackets.Render(string(c)))
			i++
			if f := top(); f != nil && f.kind == '{' {
				f.expectKey = false
			}
		case ':':
			sb.WriteString(pal.Punctuation.Render(":"))
			if f := top(); f != nil && f.kind == '{' {
				f.expectKey = false
			}
			i++
		case ',':
			sb.WriteString(pal.Punctuation.Render(","))
			if f := top(); f != nil && f.kind == '{' {
				f.expectKey = true
			}
			i++
		case '"':
			end := scanStringToken(src, i)
			segment := string(src[i:end])
			if f := top(); f != nil && f.kind == '{' && f.expectKey {
				sb.WriteString(pal.Key.Render(segment))
				f.expectKey = false
			} else {
				sb.WriteString(pal.String.Render(segment))
			}
			i = end
		default:
			if (c >= '0' && c <= '9') || c == '-' {
				end := scanNumberToken(src, i)
				sb.WriteString(pal.Number.Render(string(src[i:end])))
				i = end
				continue
			}
			if lit, style, ok := literalToken(src[i:], pal); ok {
				sb.WriteString(style.Render(lit))
				i += len(lit)
				continue
			}
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String()
}

// scanStringToken returns the index one past the closing quote of the
// string starting at i, honoring backslash escapes.
func scanStringToken(src []byte, i int) int {
	i++
	for i < len(src) {
		if src[i] == '\\' && i+1 < len(src) {
			i += 2
			continue
		}
		if src[i] == '"' {
			return i + 1
		}
		i++
	}
	return i
}

func scanNumberToken(src []byte, i int) int {
	i++
	for i < len(src) {
		c := src[i]
		if (c >= '0' && c <= '9') || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-' {
			i++
			continue
		}
		break
	}
	return i
}

func literalToken(src []byte, pal Palette) (string, lipgloss.Style, bool) {
	switch {
	case bytes.HasPrefix(src, []byte("true")):
		return "true", pal.True, true
	case bytes.HasPrefix(src, []byte("false")):
		return "false", pal.False, true
	case bytes.HasPrefix(src, []byte("null")):
		return "null", pal.Null, true
	default:
		return "", lipgloss.Style{}, false
	}
}
