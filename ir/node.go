package ir

import (
	"strconv"
	"strings"
)

// Node is one value in a document tree. A Scalar carries its text in Text.
// A Sequence keeps its children in Values. A Map keeps key nodes in Fields
// and value nodes in Values, index-aligned.
type Node struct {
	Kind   Kind
	Text   string
	Fields []*Node
	Values []*Node
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func Scalar(text string) *Node {
	return &Node{Kind: ScalarKind, Text: text}
}

func Sequence(elems ...*Node) *Node {
	return &Node{Kind: SequenceKind, Values: elems}
}

func Map() *Node {
	return &Node{Kind: MapKind}
}

func (n *Node) Len() int {
	return len(n.Values)
}

func (n *Node) Append(child *Node) {
	n.Values = append(n.Values, child)
}

// ForceInsert appends the pair without looking at existing keys.
func (n *Node) ForceInsert(key, val *Node) {
	n.Fields = append(n.Fields, key)
	n.Values = append(n.Values, val)
}

// Insert replaces the value of an Equal key if one is present, otherwise
// appends the pair.
func (n *Node) Insert(key, val *Node) {
	for i := range n.Fields {
		if Equal(n.Fields[i], key) {
			n.Values[i] = val
			return
		}
	}
	n.ForceInsert(key, val)
}

func Get(n *Node, field string) *Node {
	for i := range n.Fields {
		f := n.Fields[i]
		if f.Kind == ScalarKind && f.Text == field {
			return n.Values[i]
		}
	}
	return nil
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Kind = n.Kind
	dst.Text = n.Text
	dst.Fields = nil
	dst.Values = nil
	if len(n.Fields) > 0 {
		dst.Fields = make([]*Node, len(n.Fields))
		for i, f := range n.Fields {
			dst.Fields[i] = f.Clone()
		}
	}
	if len(n.Values) > 0 {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// String renders a compact single-line dump for debugging. It is not a
// document syntax.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b)
	return b.String()
}

func (n *Node) dump(b *strings.Builder) {
	switch n.Kind {
	case NullKind:
		b.WriteString("null")
	case ScalarKind:
		b.WriteString(strconv.Quote(n.Text))
	case SequenceKind:
		b.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			v.dump(b)
		}
		b.WriteByte(']')
	case MapKind:
		b.WriteByte('{')
		for i := range n.Values {
			if i > 0 {
				b.WriteByte(' ')
			}
			n.Fields[i].dump(b)
			b.WriteByte(':')
			n.Values[i].dump(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString("<unknown kind>")
	}
}
