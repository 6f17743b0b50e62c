package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindText, "Text"},
		{KindBool, "Bool"},
		{KindSequence, "Sequence"},
		{KindElement, "Element"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil", nil, true},
		{"empty text", Empty(), true},
		{"text", Text("x"), false},
		{"bool", Bool(true), true},
		{"empty sequence", Sequence(Text(""), Bool(false)), true},
		{"sequence with text", Sequence(Text(""), Text("a")), false},
		{"fragment with raw", &VNode{Kind: KindFragment, Unsafe: "<b>"}, false},
		{"empty fragment", &VNode{Kind: KindFragment}, true},
		{"element", &VNode{Kind: KindElement, Tag: "div"}, false},
		{"component placeholder", &VNode{Kind: KindComponent, Text: "Card"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeWalk(t *testing.T) {
	tree := &VNode{
		Kind: KindElement,
		Tag:  "ul",
		Children: []*VNode{
			{Kind: KindElement, Tag: "li", Children: []*VNode{Text("a")}},
			{Kind: KindElement, Tag: "li", Children: []*VNode{Text("b")}},
		},
	}

	var texts []string
	tree.Walk(func(n *VNode) bool {
		if n.Kind == KindText {
			texts = append(texts, n.Text)
		}
		return true
	})
	if len(texts) != 2 || texts[0] != "a" || texts[1] != "b" {
		t.Errorf("Walk visited %v, want [a b]", texts)
	}

	visited := 0
	tree.Walk(func(n *VNode) bool {
		visited++
		return n.Tag != "ul"
	})
	if visited != 1 {
		t.Errorf("Walk should skip children when fn returns false, visited %d", visited)
	}
}
