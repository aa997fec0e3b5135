package ecs

import "github.com/milk9111/roofhopper/ecs/component"

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value T) error {
	return w.AddComponent(e, handle.Kind(), value)
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.RemoveComponent(e, handle.Kind())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.HasComponent(e, handle.Kind())
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (T, bool) {
	var zero T
	value, ok := w.GetComponent(e, handle.Kind())
	if !ok {
		return zero, false
	}
	cast, ok := value.(T)
	if !ok {
		return zero, false
	}
	return cast, true
}

// ForEach calls fn with a pointer to each entity's component of the given
// kind and stores the result back, so fn may mutate it in place.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, value *T)) {
	for _, e := range w.Query(kind) {
		raw, ok := w.GetComponent(e, kind)
		if !ok {
			continue
		}
		value, ok := raw.(T)
		if !ok {
			continue
		}
		fn(e, &value)
		if err := w.AddComponent(e, kind, value); err != nil {
			panic("ecs: for each: " + err.Error())
		}
	}
}
