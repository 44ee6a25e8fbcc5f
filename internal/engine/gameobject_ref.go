package engine

// ObjectLookup resolves UIDs to live GameObjects. *Scene implements it.
type ObjectLookup interface {
	FindByUID(uid uint64) *GameObject
}

// GameObjectRef is a weak reference to a GameObject by UID.
// The referenced object may be destroyed at any time; Get returns nil once it is.
//
// Example:
//
//	type Follower struct {
//	    engine.BaseComponent
//	    Target engine.GameObjectRef
//	}
//
//	func (f *Follower) Update(dt float32) {
//	    if target := f.Target.Get(f.GetGameObject().Scene); target != nil {
//	        // Use the target...
//	    }
//	}
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// RefTo returns a reference to g, or an empty reference for nil.
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the live GameObject.
// Returns nil if the reference is empty, the lookup is nil, or the object is gone.
func (r GameObjectRef) Get(lookup ObjectLookup) *GameObject {
	if r.UID == 0 || lookup == nil {
		return nil
	}
	g := lookup.FindByUID(r.UID)
	if g == nil || g.destroyed {
		return nil
	}
	return g
}

// IsValid returns true if the reference points to something (UID != 0).
// Note: This doesn't check if the GameObject still exists; use Get for that.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set sets the reference to point to the given GameObject.
// Pass nil to clear the reference.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

// Clear clears the reference (sets UID to 0).
func (r *GameObjectRef) Clear() {
	r.UID = 0
}
