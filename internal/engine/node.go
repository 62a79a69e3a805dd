package engine

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Scale    rl.Vector3
}

// Node is one entry of the scene graph: a marker, a light or the loaded model.
type Node struct {
	ID         uint64
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *Node
	Children   []*Node
	components []Component
	started    bool
}

func NewNode(name string) *Node {
	return &Node{
		ID:     nextID.Add(1),
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*Node, 0),
	}
}

func (n *Node) AddComponent(c Component) {
	c.SetNode(n)
	n.components = append(n.components, c)
}

// GetComponent returns the first component of type T on n, or the zero value.
func GetComponent[T any](n *Node) T {
	var zero T
	if n == nil {
		return zero
	}
	for _, c := range n.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (n *Node) Start() {
	if n.started {
		return
	}
	for _, c := range n.components {
		c.Start()
	}
	n.started = true
	for _, child := range n.Children {
		child.Start()
	}
}

func (n *Node) Update(deltaTime float32) {
	if !n.Active {
		return
	}
	for _, c := range n.components {
		c.Update(deltaTime)
	}
	for _, child := range n.Children {
		child.Update(deltaTime)
	}
}

func (n *Node) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n *Node) AddChild(child *Node) {
	child.Parent = n
	child.setScene(n.Scene)
	n.Children = append(n.Children, child)
}

func (n *Node) setScene(s *Scene) {
	n.Scene = s
	for _, c := range n.Children {
		c.setScene(s)
	}
}

// WorldPosition composes positions and scales up the parent chain.
func (n *Node) WorldPosition() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Position
	}
	ps := n.Parent.WorldScale()
	scaled := rl.Vector3{
		X: n.Transform.Position.X * ps.X,
		Y: n.Transform.Position.Y * ps.Y,
		Z: n.Transform.Position.Z * ps.Z,
	}
	return rl.Vector3Add(n.Parent.WorldPosition(), scaled)
}

func (n *Node) WorldScale() rl.Vector3 {
	if n.Parent == nil {
		return n.Transform.Scale
	}
	ps := n.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * n.Transform.Scale.X,
		Y: ps.Y * n.Transform.Scale.Y,
		Z: ps.Z * n.Transform.Scale.Z,
	}
}
