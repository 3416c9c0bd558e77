package color

import (
	"fmt"

	"github.com/fatih/color"
)

// Color identifies a card color. Wild belongs to the recolorable kinds only;
// every other card carries one of the four standard colors.
type Color int

const (
	Red Color = iota + 1
	Yellow
	Green
	Blue
	Wild
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var paints = map[Color]colorStruct{
	Red:    {"red", color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {"yellow", color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {"green", color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {"blue", color.New(color.FgHiCyan).SprintfFunc()},
	Wild:   {"wild", color.New(color.FgHiWhite).SprintfFunc()},
}

func (c Color) Name() string {
	paint, ok := paints[c]
	if !ok {
		return "unknown"
	}
	return paint.name
}

func (c Color) Paint(text string) string {
	paint, ok := paints[c]
	if !ok {
		return text
	}
	return paint.colorFunction(text) + fmt.Sprintf("(%s)", paint.name)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	paint, ok := paints[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return paint.colorFunction(text, args...) + fmt.Sprintf("(%s)", paint.name)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

// Standard returns the four playable colors in a fixed order, so that menus
// and hand tallies iterate deterministically.
func Standard() []Color {
	return []Color{Red, Yellow, Green, Blue}
}

// IsStandard reports whether c is one of the four playable colors.
func (c Color) IsStandard() bool {
	return c >= Red && c <= Blue
}

func ByName(name string) (Color, error) {
	for _, standardColor := range Standard() {
		if paints[standardColor].name == name {
			return standardColor, nil
		}
	}
	return 0, fmt.Errorf("invalid color '%s'", name)
}
