// Command gen-city writes the rooftop city level as a scene file and prints
// the checkpoint respawn table for the config file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"grapple3d/internal/assets"
	"grapple3d/internal/components"
	"grapple3d/internal/config"
	"grapple3d/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// building is a box standing on its center point. A non-zero checkpoint puts
// a checkpoint volume on the roof.
type building struct {
	name       string
	x, y, z    float32
	w, h, d    float32
	material   byte
	checkpoint int
}

type hook struct {
	name    string
	x, y, z float32
}

type platform struct {
	name       string
	start, end rl.Vector3
}

var materials = map[byte]rl.Color{
	'a': assets.ConcreteDark,
	'b': assets.ConcreteLight,
	'c': assets.Brick,
	'd': assets.Steel,
	'e': assets.Tower,
}

var buildings = []building{
	{"Transition01", 26, 3, -60, 6, 6, 8, 'c', 0},

	// Low rises
	{"Bldg01", 35, 5, -58, 8, 10, 10, 'c', 0},
	{"Bldg02", 46, 5.5, -56, 6, 11, 8, 'b', 0},
	{"Bldg03", 56, 5, -60, 10, 10, 10, 'a', 0},
	{"Bldg04", 68, 6, -64, 8, 12, 8, 'c', 0},
	{"Bldg05", 75, 7, -72, 10, 14, 10, 'b', 2},

	// Rising heights
	{"Bldg06", 82, 9, -80, 6, 18, 6, 'd', 0},
	{"Bldg07", 75, 8, -88, 8, 16, 8, 'a', 0},
	{"Bldg08", 65, 10, -95, 10, 20, 10, 'b', 0},
	{"Bldg09", 55, 10, -105, 8, 20, 8, 'c', 0},
	{"Bldg10", 45, 11, -112, 10, 22, 10, 'a', 3},

	// Downtown core
	{"Bldg11", 38, 13, -120, 6, 26, 6, 'd', 0},
	{"Bldg12", 28, 12, -128, 10, 24, 12, 'b', 0},
	{"Bldg13", 18, 15, -136, 8, 30, 8, 'e', 0},
	{"Bldg14", 8, 13, -142, 6, 26, 6, 'c', 0},
	{"Bldg15", -2, 15, -150, 10, 30, 10, 'a', 4},

	// Skyline
	{"Bldg16", -10, 17.5, -158, 6, 35, 6, 'd', 0},
	{"Bldg17", -4, 17.5, -168, 8, 35, 8, 'e', 0},
	{"Bldg18", 6, 20, -175, 6, 40, 6, 'a', 0},
	{"Bldg19", 15, 20, -182, 10, 40, 10, 'b', 5},

	// Tower gauntlet
	{"Bldg20", 22, 22.5, -190, 4, 45, 4, 'e', 0},
	{"Bldg21", 30, 22.5, -196, 4, 45, 4, 'd', 0},
	{"Bldg22", 38, 25, -192, 4, 50, 4, 'e', 0},
	{"Bldg23", 46, 25, -200, 6, 50, 6, 'a', 6},

	// Spire
	{"SpireBase", 50, 27.5, -210, 12, 55, 12, 'd', 0},
	{"SpireMid", 50, 32.5, -220, 8, 65, 8, 'e', 0},
	{"SpireTop", 50, 40, -228, 4, 80, 4, 'a', 7},
}

var decoration = []building{
	{"Deco01", 45, 12.5, -50, 6, 25, 6, 'a', 0},
	{"Deco02", 62, 10, -48, 8, 20, 8, 'b', 0},
	{"Deco03", 90, 15, -75, 6, 30, 6, 'd', 0},
	{"Deco04", 85, 12.5, -95, 10, 25, 10, 'c', 0},
	{"Deco05", 22, 20, -125, 4, 40, 4, 'e', 0},
	{"Deco06", -15, 17.5, -140, 8, 35, 8, 'a', 0},
	{"Deco07", -22, 12.5, -162, 6, 25, 6, 'c', 0},
	{"Deco08", 28, 22.5, -178, 4, 45, 4, 'd', 0},
	{"Deco09", 62, 25, -208, 6, 50, 6, 'e', 0},
	{"Deco10", 38, 20, -218, 8, 40, 8, 'a', 0},
}

var hooks = []hook{
	{"Hook01", 30, 14, -59},
	{"Hook02", 62, 16, -62},
	{"Hook03", 65, 16, -63},
	{"Hook04", 78, 22, -76},
	{"Hook05", 80, 22, -78},
	{"Hook06", 78, 20, -84},
	{"Hook07", 70, 24, -92},
	{"Hook08", 60, 24, -100},
	{"Hook09", 42, 30, -116},
	{"Hook10", 40, 30, -118},
	{"Hook11", 23, 34, -132},
	{"Hook12", 13, 30, -139},
	{"Hook13", 3, 34, -146},
	{"Hook14", -6, 39, -154},
	{"Hook15", -7, 39, -163},
	{"Hook16", 1, 44, -172},
	{"Hook17", 10, 44, -179},
	{"Hook18", 18, 49, -186},
	{"Hook19", 26, 49, -193},
	{"Hook20", 34, 54, -194},
	{"Hook21", 42, 54, -196},
	{"Hook22", 48, 59, -205},
	{"Hook23", 50, 69, -213},
	{"Hook24", 50, 69, -215},
	{"Hook25", 50, 84, -224},
	{"Hook26", 50, 84, -226},
}

var platforms = []platform{
	{"CityMovPlat01", rl.Vector3{X: 60, Y: 20, Z: -100}, rl.Vector3{X: 56, Y: 20, Z: -104}},
	{"CityMovPlat02", rl.Vector3{X: -2, Y: 35, Z: -170}, rl.Vector3{X: 3, Y: 37, Z: -173}},
	{"CityMovPlat03", rl.Vector3{X: 50, Y: 65, Z: -224}, rl.Vector3{X: 50, Y: 74, Z: -227}},
}

var (
	platformSize   = rl.Vector3{X: 4, Y: 0.5, Z: 4}
	platformLegSec = float32(4)
)

const (
	// Checkpoint volume center above the roof
	checkpointLift = 0.5
	// Respawn point above the roof
	spawnLift = 1.0
)

func (b building) center() rl.Vector3 {
	return rl.Vector3{X: b.x, Y: b.y, Z: b.z}
}

func (b building) roof() float32 {
	return b.y + b.h/2
}

// spawn is where the player respawns for this building's checkpoint.
func (b building) spawn() config.Vec3 {
	return config.Vec3{b.x, b.roof() + spawnLift, b.z}
}

func (b building) def() world.ObjectDef {
	return world.StaticBlock(b.name, b.center(), rl.Vector3{X: b.w, Y: b.h, Z: b.d}, materials[b.material])
}

func (b building) checkpointDef() world.ObjectDef {
	pos := rl.Vector3{X: b.x, Y: b.roof() + checkpointLift, Z: b.z}
	size := rl.Vector3{X: b.w * 0.6, Y: 2, Z: b.d * 0.6}
	return world.CheckpointVolume(b.checkpoint, pos, size)
}

// city returns the level objects and the checkpoint table. The table keeps
// the base checkpoints and appends one entry per rooftop checkpoint, in
// checkpoint order, so rooftop numbers must continue where base ends.
// Without the start area the base entries would spawn over empty space, so
// they are moved onto the first rooftop.
func city(base []config.Vec3, withStart bool) (world.SceneFile, []config.Vec3) {
	var sf world.SceneFile
	if withStart {
		sf = world.DefaultLevel()
	}

	for _, b := range buildings {
		sf.Objects = append(sf.Objects, b.def())
		if b.checkpoint != 0 {
			sf.Objects = append(sf.Objects, b.checkpointDef())
		}
	}
	for _, b := range decoration {
		sf.Objects = append(sf.Objects, b.def())
	}
	for _, h := range hooks {
		sf.Objects = append(sf.Objects, world.HookTarget(h.name, rl.Vector3{X: h.x, Y: h.y, Z: h.z}))
	}
	for _, p := range platforms {
		sf.Objects = append(sf.Objects, world.MovingBlock(p.name, []rl.Vector3{p.start, p.end},
			platformSize, assets.PlatformBlue, platformLegSec, components.EaseLinear))
	}

	table := checkpointTable(base)
	if !withStart && len(table) > len(base) {
		for i := range base {
			table[i] = table[len(base)]
		}
	}
	return sf, table
}

func checkpointTable(base []config.Vec3) []config.Vec3 {
	rooftop := slices.DeleteFunc(slices.Clone(buildings), func(b building) bool { return b.checkpoint == 0 })
	slices.SortFunc(rooftop, func(a, b building) int { return a.checkpoint - b.checkpoint })

	table := slices.Clone(base)
	for _, b := range rooftop {
		table = append(table, b.spawn())
	}
	return table
}

func writeCheckpointConfig(path string, table []config.Vec3) error {
	data, err := yaml.Marshal(struct {
		Checkpoints []config.Vec3 `yaml:"checkpoints"`
	}{table})
	if err != nil {
		return fmt.Errorf("marshal checkpoints: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write checkpoints: %w", err)
	}
	return nil
}

func printSummary(out io.Writer, table []config.Vec3) {
	fmt.Fprintln(out, "=== CHECKPOINT POSITIONS ===")
	for i, v := range table {
		fmt.Fprintf(out, "  Checkpoint %d: [%g, %g, %g]\n", i, v[0], v[1], v[2])
	}
	fmt.Fprintf(out, "\nGenerated %d main buildings + %d decoration buildings\n", len(buildings), len(decoration))
	fmt.Fprintf(out, "Generated %d hookable targets\n", len(hooks))
	fmt.Fprintf(out, "Generated %d moving platforms\n", len(platforms))
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gen-city", flag.ContinueOnError)
	fs.SetOutput(out)
	scenePath := fs.String("out", "city.json", "scene file to write")
	configOut := fs.String("config-out", "", "also write the checkpoint table as a YAML config fragment")
	withStart := fs.Bool("with-start", true, "include the starting area")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sf, table := city(config.Default().Checkpoints, *withStart)
	if err := world.WriteSceneFile(*scenePath, sf); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d objects to %s\n", len(sf.Objects), *scenePath)

	if *configOut != "" {
		if err := writeCheckpointConfig(*configOut, table); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote checkpoint table to %s\n", *configOut)
	}

	printSummary(out, table)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "gen-city: %v\n", err)
		os.Exit(1)
	}
}
