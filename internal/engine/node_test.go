package engine

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type countingComponent struct {
	BaseComponent
	starts  int
	updates int
}

func (c *countingComponent) Start()                   { c.starts++ }
func (c *countingComponent) Update(deltaTime float32) { c.updates++ }

type labelComponent struct {
	BaseComponent
	Label string
}

func TestNewNode(t *testing.T) {
	n := NewNode("Marker")

	if n.Name != "Marker" {
		t.Errorf("Expected name 'Marker', got '%s'", n.Name)
	}
	if n.ID == 0 {
		t.Error("ID should not be 0")
	}
	if !n.Active {
		t.Error("new nodes should be active")
	}
	if n.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", n.Transform.Scale)
	}
}

func TestNodeUniqueIDs(t *testing.T) {
	a := NewNode("A")
	b := NewNode("B")
	if a.ID == b.ID {
		t.Error("Nodes should have unique IDs")
	}
}

func TestNodeHasTag(t *testing.T) {
	n := NewNode("Point 1")
	n.Tags = []string{"marker", "pickable"}

	if !n.HasTag("marker") {
		t.Error("HasTag should return true for existing tag")
	}
	if n.HasTag("light") {
		t.Error("HasTag should return false for non-existent tag")
	}
	if NewNode("Empty").HasTag("marker") {
		t.Error("HasTag should return false when Tags is empty")
	}
}

func TestGetComponent(t *testing.T) {
	n := NewNode("Point 1")
	label := &labelComponent{Label: "Point 1"}
	n.AddComponent(&countingComponent{})
	n.AddComponent(label)

	got := GetComponent[*labelComponent](n)
	if got != label {
		t.Fatalf("Expected label component, got %v", got)
	}
	if got.Node() != n {
		t.Error("AddComponent should set the owning node")
	}
	if GetComponent[*labelComponent](nil) != nil {
		t.Error("GetComponent on nil node should return zero value")
	}
	if c := GetComponent[*countingComponent](NewNode("Empty")); c != nil {
		t.Error("GetComponent on a bare node should return zero value")
	}
}

func TestNodeStartCalledOnce(t *testing.T) {
	n := NewNode("Model")
	child := NewNode("Mesh")
	c := &countingComponent{}
	cc := &countingComponent{}
	n.AddComponent(c)
	child.AddComponent(cc)
	n.AddChild(child)

	n.Start()
	n.Start()

	if c.starts != 1 || cc.starts != 1 {
		t.Errorf("Expected one Start each, got %d and %d", c.starts, cc.starts)
	}
}

func TestNodeUpdateSkipsInactive(t *testing.T) {
	n := NewNode("Light")
	c := &countingComponent{}
	n.AddComponent(c)

	n.Update(0.016)
	n.Active = false
	n.Update(0.016)

	if c.updates != 1 {
		t.Errorf("Expected 1 update, got %d", c.updates)
	}
}

func TestNodeParentChild(t *testing.T) {
	parent := NewNode("Parent")
	child := NewNode("Child")

	parent.AddChild(child)
	if child.Parent != parent || len(parent.Children) != 1 {
		t.Fatal("AddChild should link both directions")
	}
	if child.Scene != nil {
		t.Error("child of a detached node has no scene")
	}
}

func TestWorldPosition(t *testing.T) {
	parent := NewNode("Model")
	parent.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewNode("Marker")
	child.Transform.Position = rl.Vector3{X: 1, Y: 0, Z: -1}
	parent.AddChild(child)

	got := child.WorldPosition()
	want := rl.Vector3{X: 3, Y: 2, Z: 1}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if s := child.WorldScale(); s != (rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("Expected inherited scale, got %v", s)
	}
}
