package stream

import (
	"strings"

	"github.com/fatih/color"
)

// Colors maps token kinds to color functions applied to keys and scalar
// values as they are written. Structural punctuation and formatter output
// are never colored.
type Colors struct {
	Default func(string, ...any) string
	Map     map[EventType]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[EventType]func(string, ...any) string{},
	}
	colors.Map[EventKey] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[EventString] = color.RGB(8, 196, 16).SprintfFunc()
	number := color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[EventInt] = number
	colors.Map[EventFloat] = number
	colors.Map[EventBool] = color.CyanString
	colors.Map[EventNull] = color.RGB(168, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t EventType, s string) string {
	return c.Get(t)(s)
}

func (c *Colors) Get(t EventType) func(string, ...any) string {
	f := c.Map[t]
	if f == nil {
		return c.Default
	}
	return f
}
