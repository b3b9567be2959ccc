package convert

import (
	"fmt"
	"reflect"

	"github.com/mica-format/go-mica/ir"
)

// SliceOf builds the codec for an ordered sequence of elem's type. Decode
// fills a fresh slice and hands it over only when every element decodes,
// so nothing is visible after a failure.
func SliceOf[E any](elem Codec[E]) Codec[[]E] {
	return sliceCodec[E]{elem: elem}
}

type sliceCodec[E any] struct{ elem Codec[E] }

func (c sliceCodec[E]) Encode(v []E) *ir.Node {
	n := ir.Sequence()
	for i := range v {
		n.Append(c.elem.Encode(v[i]))
	}
	return n
}

func (c sliceCodec[E]) Decode(n *ir.Node) ([]E, bool) {
	if n.Kind != ir.SequenceKind {
		return nil, false
	}
	out := make([]E, 0, n.Len())
	for _, child := range n.Values {
		e, ok := c.elem.Decode(child)
		if !ok {
			return nil, false
		}
		out = append(out, e)
	}
	return out, true
}

// ArrayOf builds the codec for the fixed size array type A, which must be
// an array of elem's type; any other A panics at construction. Decode
// checks the child count before touching any element.
func ArrayOf[A, E any](elem Codec[E]) Codec[A] {
	at := reflect.TypeFor[A]()
	et := reflect.TypeFor[E]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("convert: ArrayOf: %s is not an array of %s", at, et))
	}
	return arrayCodec[A, E]{elem: elem, n: at.Len()}
}

type arrayCodec[A, E any] struct {
	elem Codec[E]
	n    int
}

func (c arrayCodec[A, E]) Encode(v A) *ir.Node {
	rv := reflect.ValueOf(v)
	n := ir.Sequence()
	for i := 0; i < c.n; i++ {
		n.Append(c.elem.Encode(rv.Index(i).Interface().(E)))
	}
	return n
}

func (c arrayCodec[A, E]) Decode(n *ir.Node) (A, bool) {
	var zero A
	if n.Kind != ir.SequenceKind || n.Len() != c.n {
		return zero, false
	}
	out := reflect.New(reflect.TypeFor[A]()).Elem()
	for i, child := range n.Values {
		e, ok := c.elem.Decode(child)
		if !ok {
			return zero, false
		}
		out.Index(i).Set(reflect.ValueOf(&e).Elem())
	}
	return out.Interface().(A), true
}

// PairOf builds the codec for a 2-tuple: a two element sequence whose
// first child decodes into A and second into B.
func PairOf[A, B any](first Codec[A], second Codec[B]) Codec[Pair[A, B]] {
	return pairCodec[A, B]{first: first, second: second}
}

type pairCodec[A, B any] struct {
	first  Codec[A]
	second Codec[B]
}

func (c pairCodec[A, B]) Encode(v Pair[A, B]) *ir.Node {
	n := ir.Sequence()
	n.Append(c.first.Encode(v.First))
	n.Append(c.second.Encode(v.Second))
	return n
}

func (c pairCodec[A, B]) Decode(n *ir.Node) (Pair[A, B], bool) {
	var zero Pair[A, B]
	if n.Kind != ir.SequenceKind || n.Len() != 2 {
		return zero, false
	}
	a, ok := c.first.Decode(n.Values[0])
	if !ok {
		return zero, false
	}
	b, ok := c.second.Decode(n.Values[1])
	if !ok {
		return zero, false
	}
	return Pair[A, B]{First: a, Second: b}, true
}

// MapOf builds the codec for a key-unique map. Encode inserts pairs
// unchecked, which is safe because the source map cannot hold duplicate
// keys. Decode accepts a duplicate key and lets the later value win.
func MapOf[K comparable, V any](key Codec[K], val Codec[V]) Codec[map[K]V] {
	return mapCodec[K, V]{key: key, val: val}
}

type mapCodec[K comparable, V any] struct {
	key Codec[K]
	val Codec[V]
}

func (c mapCodec[K, V]) Encode(v map[K]V) *ir.Node {
	n := ir.Map()
	for k, vv := range v {
		n.ForceInsert(c.key.Encode(k), c.val.Encode(vv))
	}
	return n
}

func (c mapCodec[K, V]) Decode(n *ir.Node) (map[K]V, bool) {
	if n.Kind != ir.MapKind {
		return nil, false
	}
	out := make(map[K]V, n.Len())
	for i := range n.Values {
		k, ok := c.key.Decode(n.Fields[i])
		if !ok {
			return nil, false
		}
		v, ok := c.val.Decode(n.Values[i])
		if !ok {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
