package physics

import (
	"grapple3d/internal/components"
	"grapple3d/internal/engine"

	"github.com/samber/lo"
)

// triggerPair is a body overlapping a trigger volume.
type triggerPair struct {
	Trigger, Body *engine.GameObject
}

type PhysicsWorld struct {
	Kinematics []*engine.GameObject // script-driven movers (player, moving platforms)
	Statics    []*engine.GameObject // solid colliders that never move (buildings, hooks)
	Triggers   []*engine.GameObject // non-solid volumes (checkpoints)

	// HitFromInside lets a ray starting inside a collider hit that collider.
	// Off by default so a ray cast from the player's eye ignores the player.
	HitFromInside bool

	// Trigger tracking for enter/exit callbacks
	activeTriggers  map[triggerPair]bool // overlaps from last update
	currentTriggers map[triggerPair]bool // overlaps this update
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Kinematics:      make([]*engine.GameObject, 0),
		Statics:         make([]*engine.GameObject, 0),
		Triggers:        make([]*engine.GameObject, 0),
		activeTriggers:  make(map[triggerPair]bool),
		currentTriggers: make(map[triggerPair]bool),
	}
}

// AddObject classifies g by its components. Objects with no collider are ignored.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	box := engine.GetComponent[*components.BoxCollider](g)
	sphere := engine.GetComponent[*components.SphereCollider](g)
	switch {
	case box == nil && sphere == nil:
		return
	case box != nil && box.IsTrigger:
		p.Triggers = append(p.Triggers, g)
	case engine.GetComponent[*components.CharacterBody](g) != nil,
		engine.GetComponent[*components.MovingPlatform](g) != nil:
		p.Kinematics = append(p.Kinematics, g)
	default:
		p.Statics = append(p.Statics, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	without := func(list []*engine.GameObject) []*engine.GameObject {
		return lo.Without(list, g)
	}
	p.Kinematics = without(p.Kinematics)
	p.Statics = without(p.Statics)
	p.Triggers = without(p.Triggers)

	for pair := range p.activeTriggers {
		if pair.Trigger == g || pair.Body == g {
			delete(p.activeTriggers, pair)
		}
	}
}

// Collidables returns every solid object: kinematics first, then statics.
func (p *PhysicsWorld) Collidables() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Kinematics...)
	all = append(all, p.Statics...)
	return lo.Filter(all, func(g *engine.GameObject, _ int) bool {
		return !g.Destroyed()
	})
}

// Update detects character bodies entering and leaving trigger volumes and
// dispatches OnTriggerEnter/OnTriggerExit. Movement itself is done by the
// bodies during their own Update.
func (p *PhysicsWorld) Update() {
	p.currentTriggers = make(map[triggerPair]bool)

	for _, trigger := range p.Triggers {
		if trigger.Destroyed() || !trigger.Active {
			continue
		}
		tbox := engine.GetComponent[*components.BoxCollider](trigger)
		volume := NewAABBFromCenter(tbox.GetCenter(), tbox.GetWorldSize())

		for _, body := range p.Kinematics {
			if body.Destroyed() || engine.GetComponent[*components.CharacterBody](body) == nil {
				continue
			}
			bbox := engine.GetComponent[*components.BoxCollider](body)
			if bbox == nil {
				continue
			}
			if NewAABBFromCenter(bbox.GetCenter(), bbox.GetWorldSize()).Intersects(volume) {
				p.currentTriggers[triggerPair{Trigger: trigger, Body: body}] = true
			}
		}
	}

	p.dispatchTriggerCallbacks()
}

// dispatchTriggerCallbacks sends OnTriggerEnter/Exit to handlers on both sides
func (p *PhysicsWorld) dispatchTriggerCallbacks() {
	for pair := range p.currentTriggers {
		if !p.activeTriggers[pair] {
			notifyTriggerEnter(pair.Trigger, pair.Body)
			notifyTriggerEnter(pair.Body, pair.Trigger)
		}
	}

	for pair := range p.activeTriggers {
		if !p.currentTriggers[pair] {
			notifyTriggerExit(pair.Trigger, pair.Body)
			notifyTriggerExit(pair.Body, pair.Trigger)
		}
	}

	// Swap buffers
	p.activeTriggers = p.currentTriggers
}

func notifyTriggerEnter(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerEnter(other)
		}
	}
}

func notifyTriggerExit(obj, other *engine.GameObject) {
	for _, comp := range obj.Components() {
		if handler, ok := comp.(engine.TriggerHandler); ok {
			handler.OnTriggerExit(other)
		}
	}
}
