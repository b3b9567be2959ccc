package convert

import (
	"unicode/utf8"

	"github.com/mica-format/go-mica/ir"
)

// Node passes document trees through unchanged. Both directions clone so
// neither side aliases the other.
var Node Codec[*ir.Node] = nodeCodec{}

type nodeCodec struct{}

func (nodeCodec) Encode(n *ir.Node) *ir.Node {
	if n == nil {
		return ir.Null()
	}
	return n.Clone()
}

func (nodeCodec) Decode(n *ir.Node) (*ir.Node, bool) {
	if n == nil {
		return ir.Null(), true
	}
	return n.Clone(), true
}

var String Codec[string] = stringCodec{}

type stringCodec struct{}

func (stringCodec) Encode(s string) *ir.Node {
	return ir.Scalar(s)
}

// Decode copies the scalar text verbatim; escapes were resolved by the
// parser that built the tree.
func (stringCodec) Decode(n *ir.Node) (string, bool) {
	if n.Kind != ir.ScalarKind {
		return "", false
	}
	return n.Text, true
}

// Lit is constant text with no decoding form. Literal is an Encoder only,
// so decoding into Lit through it does not compile.
type Lit string

var Literal Encoder[Lit] = litEncoder{}

type litEncoder struct{}

func (litEncoder) Encode(s Lit) *ir.Node {
	return ir.Scalar(string(s))
}

// Null transcodes the null placeholder. Decode succeeds only on a
// Null-kind node.
var Null Codec[NullValue] = nullCodec{}

type nullCodec struct{}

func (nullCodec) Encode(NullValue) *ir.Node {
	return ir.Null()
}

func (nullCodec) Decode(n *ir.Node) (NullValue, bool) {
	return NullValue{}, n.Kind == ir.NullKind
}

// Char holds single characters as one-rune scalars. rune is int32, so the
// generic entry points treat rune as an integer; character semantics are
// chosen by using Char directly.
var Char Codec[rune] = charCodec{}

type charCodec struct{}

func (charCodec) Encode(r rune) *ir.Node {
	return ir.Scalar(string(r))
}

func (charCodec) Decode(n *ir.Node) (rune, bool) {
	if n.Kind != ir.ScalarKind {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(n.Text)
	if size == 0 || size != len(n.Text) {
		return 0, false
	}
	if r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}

var Bool Codec[bool] = boolCodec{}

type boolCodec struct{}

func (boolCodec) Encode(b bool) *ir.Node {
	if b {
		return ir.Scalar("true")
	}
	return ir.Scalar("false")
}

// The accepted tokens are exactly the true|True|TRUE and false|False|FALSE
// variants. The yaml 1.1 yes/no/on/off family is not recognized.
func (boolCodec) Decode(n *ir.Node) (bool, bool) {
	if n.Kind != ir.ScalarKind {
		return false, false
	}
	switch {
	case trueText.MatchString(n.Text):
		return true, true
	case falseText.MatchString(n.Text):
		return false, true
	}
	return false, false
}
