package physics

import (
	"markerview/internal/components"
	"markerview/internal/engine"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Node     *engine.Node
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RaycastAll tests the ray against every sphere collider on nodes carrying
// tag (all nodes when tag is empty) and returns the hits nearest first.
func RaycastAll(scene *engine.Scene, ray rl.Ray, tag string, maxDistance float32) []RaycastHit {
	direction := rl.Vector3Normalize(ray.Direction)
	var hits []RaycastHit

	scene.Walk(func(n *engine.Node) {
		if !n.Active || (tag != "" && !n.HasTag(tag)) {
			return
		}
		sphere := engine.GetComponent[*components.SphereCollider](n)
		if sphere == nil {
			return
		}
		if hit, ok := raycastSphere(ray.Position, direction, sphere, maxDistance); ok {
			hit.Node = n
			hits = append(hits, hit)
		}
	})

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// Raycast returns the closest hit, if any.
func Raycast(scene *engine.Scene, ray rl.Ray, tag string, maxDistance float32) (RaycastHit, bool) {
	hits := RaycastAll(scene, ray, tag, maxDistance)
	if len(hits) == 0 {
		return RaycastHit{}, false
	}
	return hits[0], true
}

func raycastSphere(origin, direction rl.Vector3, sphere *components.SphereCollider, maxDistance float32) (RaycastHit, bool) {
	center := sphere.GetCenter()
	radius := sphere.GetWorldRadius()

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 {
		t = (-b + float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
