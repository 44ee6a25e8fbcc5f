package engine

import "github.com/samber/lo"

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and its children from the scene and marks them destroyed.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.destroyed {
		return
	}
	g.destroyed = true
	for _, c := range g.components {
		if h, ok := c.(DestroyHandler); ok {
			h.OnDestroy()
		}
	}
}

// FindByUID is an O(1) lookup. Returns nil for unknown or removed objects.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	if s == nil {
		return nil
	}
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	obj, _ := lo.Find(s.GameObjects, func(g *GameObject) bool {
		return g.Name == name
	})
	return obj
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	return lo.Filter(s.GameObjects, func(g *GameObject, _ int) bool {
		return g.HasTag(tag)
	})
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may destroy objects mid-update, so iterate a snapshot.
	snapshot := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range snapshot {
		g.Update(deltaTime)
	}
}
