// Package convert transcodes native Go values to and from ir document
// trees.
//
// Each supported type has a conversion rule: an Encode that always
// succeeds and a Decode that reports failure as a plain boolean, with no
// reason attached. Rules are stateless values. The typed codec values
// (String, Bool, Int32, ...) and the combinators (SliceOf, MapOf, ...)
// compose statically; the generic entry points Encode and Decode select a
// rule from the type alone and are the usual way in:
//
//	node := convert.Encode(map[string][]int{"a": {1, 2}})
//	m, ok := convert.Decode[map[string][]int](node)
//
// Custom types plug in through Register, or RegisterEncoder for
// encode-only types.
package convert

import "github.com/mica-format/go-mica/ir"

// Encoder converts one native type to a document node. Encoding never
// fails.
type Encoder[T any] interface {
	Encode(T) *ir.Node
}

// Codec is the conversion rule for one native type: a total Encode and a
// partial Decode. A failed Decode returns the zero value and false; the
// caller's state is never partially written.
type Codec[T any] interface {
	Encoder[T]
	Decode(*ir.Node) (T, bool)
}

// NullValue is the decoded form of a Null node.
type NullValue struct{}

// Pair is a 2-tuple, transcoded as a two element sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}
