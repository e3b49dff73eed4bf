// Package palette maps escape-time iteration counts to colors.
//
// Palettes only ever see counts below the iteration cap; the renderer paints
// points that never escaped with its interior color.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
)

// ErrUnknown is returned by ByName for unregistered palette names.
var ErrUnknown = errors.New("unknown palette")

// A Func returns the color of a point that escaped after n iterations.
type Func func(n int) color.RGBA

// Interior is the color of points assumed to be in the set.
var Interior = color.RGBA{A: 0xff}

var byName = map[string]Func{
	"hsl":   HSLCycle,
	"gray":  Gray,
	"wheel": Wheel,
}

// ByName looks up a palette registered under name.
func ByName(name string) (Func, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, want one of %v", ErrUnknown, name, Names())
	}
	return f, nil
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HSLCycle advances the hue 1.5° per iteration at fixed saturation and lightness.
func HSLCycle(n int) color.RGBA {
	return HSL(math.Mod(float64(n)*1.5, 360), 0.7, 0.5)
}

// Gray is a ramp from black to white repeating every 256 iterations.
func Gray(n int) color.RGBA {
	m := uint8(n % 256)
	return color.RGBA{R: m, G: m, B: m, A: 0xff}
}

var wheel = [...]color.RGBA{
	{R: 0xff, A: 0xff},
	{R: 0xff, G: 0xff, A: 0xff},
	{G: 0xff, A: 0xff},
	{G: 0xff, B: 0xff, A: 0xff},
	{B: 0xff, A: 0xff},
	{R: 0xff, B: 0xff, A: 0xff},
}

// Wheel cycles through the six primary and secondary colors.
func Wheel(n int) color.RGBA {
	return wheel[n%len(wheel)]
}
