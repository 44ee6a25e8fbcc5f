// Package assets names the colors scene files may refer to.
package assets

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/samber/lo"
)

// Level palette
var (
	ConcreteDark  = rl.NewColor(82, 84, 92, 255)
	ConcreteLight = rl.NewColor(158, 153, 145, 255)
	Brick         = rl.NewColor(128, 84, 56, 255)
	Steel         = rl.NewColor(97, 115, 140, 255)
	Tower         = rl.NewColor(51, 56, 71, 255)
	HookOrange    = rl.NewColor(230, 140, 38, 255)
	PlatformBlue  = rl.NewColor(70, 130, 180, 255)
)

var colorByName = map[string]rl.Color{
	"concrete_dark":  ConcreteDark,
	"concrete_light": ConcreteLight,
	"brick":          Brick,
	"steel":          Steel,
	"tower":          Tower,
	"hook_orange":    HookOrange,
	"platform_blue":  PlatformBlue,

	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"DarkBrown": rl.DarkBrown,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
}

// LookupColor returns the color with the given name.
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

// ColorName returns the name of c if it is in the palette. Colors with more
// than one name resolve to the first in sorted order.
func ColorName(c rl.Color) (string, bool) {
	names := lo.Keys(lo.PickByValues(colorByName, []rl.Color{c}))
	if len(names) == 0 {
		return "", false
	}
	slices.Sort(names)
	return names[0], true
}

// ColorNames returns every palette name, sorted.
func ColorNames() []string {
	names := lo.Keys(colorByName)
	slices.Sort(names)
	return names
}
