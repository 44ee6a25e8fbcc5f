package grapple

// HookableTag marks objects a grapple may attach to.
const HookableTag = "Hookable"

// Config holds the grapple's tuning values.
type Config struct {
	MaxDistance   float32 `yaml:"max_distance"`   // raycast range
	Speed         float32 `yaml:"speed"`          // pull speed while attached
	ArrivalRadius float32 `yaml:"arrival_radius"` // detach when this close to the grapple point
	// MinTravel is the distance below which the pull direction is treated as
	// undefined and the tick's move is skipped.
	MinTravel float32 `yaml:"min_travel"`

	RopeRadius        float32 `yaml:"rope_radius"`
	RopeEpsilon       float32 `yaml:"rope_epsilon"`       // shorter ropes are not re-placed
	ParallelThreshold float32 `yaml:"parallel_threshold"` // |dot(dir, up)| above this switches the basis hint

	Tag              string  `yaml:"tag"`
	Debug            bool    `yaml:"debug"` // log every shot and drop hit markers
	HitMarkerSeconds float32 `yaml:"hit_marker_seconds"`
}

func DefaultConfig() Config {
	return Config{
		MaxDistance:       200,
		Speed:             14,
		ArrivalRadius:     1.5,
		MinTravel:         0.001,
		RopeRadius:        0.01,
		RopeEpsilon:       0.001,
		ParallelThreshold: 0.99,
		Tag:               HookableTag,
		HitMarkerSeconds:  2,
	}
}
