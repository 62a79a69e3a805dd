package engine

type Scene struct {
	Name  string
	Nodes []*Node
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		Nodes: make([]*Node, 0),
	}
}

// Add appends a root node; n and its subtree now belong to s.
func (s *Scene) Add(n *Node) {
	n.setScene(s)
	s.Nodes = append(s.Nodes, n)
}

func (s *Scene) Remove(n *Node) {
	for i, obj := range s.Nodes {
		if obj == n {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			n.setScene(nil)
			return
		}
	}
}

// FindByName returns the first node named name, searching depth-first.
func (s *Scene) FindByName(name string) *Node {
	var found *Node
	s.Walk(func(n *Node) {
		if found == nil && n.Name == name {
			found = n
		}
	})
	return found
}

// FindByTag returns every node carrying tag, in Walk order.
func (s *Scene) FindByTag(tag string) []*Node {
	var result []*Node
	s.Walk(func(n *Node) {
		if n.HasTag(tag) {
			result = append(result, n)
		}
	})
	return result
}

// Walk visits every node depth-first, roots in insertion order.
func (s *Scene) Walk(fn func(n *Node)) {
	var visit func(n *Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, n := range s.Nodes {
		visit(n)
	}
}

func (s *Scene) Start() {
	for _, n := range s.Nodes {
		n.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, n := range s.Nodes {
		n.Update(deltaTime)
	}
}
