package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/roofhopper/ecs"
	"github.com/milk9111/roofhopper/ecs/component"
)

// RenderSystem draws every Box relative to the camera. World space is y-up,
// so y is flipped on the way to the screen.
type RenderSystem struct {
	camera ecs.Entity
}

func NewRenderSystem(camera ecs.Entity) *RenderSystem {
	return &RenderSystem{camera: camera}
}

type drawItem struct {
	box       component.Box
	transform component.Transform
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	camTransform, _ := ecs.Get(w, r.camera, component.TransformComponent)
	bounds := screen.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2

	items := r.collect(w)
	for _, item := range items {
		x, y := worldToScreen(item.transform, camTransform, halfW, halfH)
		vector.FillRect(
			screen,
			float32(x-item.box.Width/2),
			float32(y-item.box.Height/2),
			float32(item.box.Width),
			float32(item.box.Height),
			item.box.Color,
			false,
		)
	}
}

func (r *RenderSystem) collect(w *ecs.World) []drawItem {
	entities := w.Query(component.BoxComponent.Kind(), component.TransformComponent.Kind())
	items := make([]drawItem, 0, len(entities))
	for _, e := range entities {
		box, _ := ecs.Get(w, e, component.BoxComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		items = append(items, drawItem{box: box, transform: transform})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Layer < items[j].box.Layer
	})
	return items
}

func worldToScreen(t, cam component.Transform, halfW, halfH float64) (float64, float64) {
	return t.X - cam.X + halfW, halfH - (t.Y - cam.Y)
}
