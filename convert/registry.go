package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mica-format/go-mica/debug"
	"github.com/mica-format/go-mica/ir"
)

// A rule is the untyped form a codec takes inside the registry. dec is nil
// for encode-only rules.
type rule struct {
	enc func(reflect.Value) *ir.Node
	dec func(*ir.Node, reflect.Value) bool
}

// Rules by exact type. builtins win over everything; users is consulted
// next, before any kind-derived rule.
var (
	builtins = map[reflect.Type]*rule{}
	users    = map[reflect.Type]*rule{}
)

func init() {
	registerIn(builtins, Bytes)
	registerIn(builtins, Node)
	registerIn(builtins, Null)
	encoderIn(builtins, Literal)
}

// Register makes c the conversion rule for T at the generic entry points.
// Registration is an initialization-time operation, typically from an init
// function; the rule tables are read without locks afterwards.
func Register[T any](c Codec[T]) {
	registerIn(users, c)
}

// RegisterEncoder registers an encode-only rule for T. Encode[T] works;
// Decode[T] panics.
func RegisterEncoder[T any](e Encoder[T]) {
	encoderIn(users, e)
}

func registerIn[T any](m map[reflect.Type]*rule, c Codec[T]) {
	m[reflect.TypeFor[T]()] = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return c.Encode(v.Interface().(T))
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			t, ok := c.Decode(n)
			if !ok {
				return false
			}
			out.Set(reflect.ValueOf(&t).Elem())
			return true
		},
	}
}

func encoderIn[T any](m map[reflect.Type]*rule, e Encoder[T]) {
	m[reflect.TypeFor[T]()] = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return e.Encode(v.Interface().(T))
		},
	}
}

// Encode converts v through the rule selected by its type. Encoding is
// total; a type with no rule is a programmer error and panics.
func Encode[T any](v T) *ir.Node {
	t := reflect.TypeFor[T]()
	r := ruleFor(t)
	if r == nil {
		panic(fmt.Sprintf("convert: no conversion rule for %s", t))
	}
	return r.enc(reflect.ValueOf(&v).Elem())
}

// Decode converts n into a T. Shape, lexical and range mismatches all come
// back as a plain false. A type with no rule, or with an encode-only rule,
// is a programmer error and panics.
func Decode[T any](n *ir.Node) (T, bool) {
	var zero T
	t := reflect.TypeFor[T]()
	r := ruleFor(t)
	if r == nil {
		panic(fmt.Sprintf("convert: no conversion rule for %s", t))
	}
	if r.dec == nil {
		panic(fmt.Sprintf("convert: %s is encode-only", t))
	}
	out := reflect.New(t).Elem()
	if !r.dec(n, out) {
		if debug.Convert() {
			debug.Logf("%s does not decode %s\n", t, n)
		}
		return zero, false
	}
	return out.Interface().(T), true
}

func ruleFor(t reflect.Type) *rule {
	if r, ok := builtins[t]; ok {
		return r
	}
	if r, ok := users[t]; ok {
		return r
	}
	switch t.Kind() {
	case reflect.Bool:
		return boolRule
	case reflect.String:
		return stringRule
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedRule
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedRule
	case reflect.Float32, reflect.Float64:
		return floatRule
	case reflect.Slice:
		return sliceRule(t)
	case reflect.Array:
		return arrayRule(t)
	case reflect.Map:
		return mapRule(t)
	case reflect.Struct:
		if isPair(t) {
			return pairRule(t)
		}
	}
	return nil
}

// Kind-derived leaf rules. These pick up named types the way the exact
// tables cannot.
var (
	boolRule = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return Bool.Encode(v.Bool())
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			b, ok := Bool.Decode(n)
			if !ok {
				return false
			}
			out.SetBool(b)
			return true
		},
	}

	stringRule = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return ir.Scalar(v.String())
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			s, ok := String.Decode(n)
			if !ok {
				return false
			}
			out.SetString(s)
			return true
		},
	}

	signedRule = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return ir.Scalar(strconv.FormatInt(v.Int(), 10))
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			if n.Kind != ir.ScalarKind {
				return false
			}
			wide, ok := parseWideInt(n.Text)
			if !ok || out.OverflowInt(wide) {
				return false
			}
			out.SetInt(wide)
			return true
		},
	}

	unsignedRule = &rule{
		enc: func(v reflect.Value) *ir.Node {
			return ir.Scalar(strconv.FormatUint(v.Uint(), 10))
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			if n.Kind != ir.ScalarKind {
				return false
			}
			wide, ok := parseWideUint(n.Text)
			if !ok || out.OverflowUint(wide) {
				return false
			}
			out.SetUint(wide)
			return true
		},
	}

	floatRule = &rule{
		enc: func(v reflect.Value) *ir.Node {
			if v.Kind() == reflect.Float32 {
				return Float32.Encode(float32(v.Float()))
			}
			return Float64.Encode(v.Float())
		},
		dec: func(n *ir.Node, out reflect.Value) bool {
			if n.Kind != ir.ScalarKind {
				return false
			}
			f, ok := parseWideFloat(n.Text)
			if !ok {
				return false
			}
			// SetFloat narrows float32 targets; overflowing to an
			// infinity is accepted
			out.SetFloat(f)
			return true
		},
	}
)

// Kind-derived container rules recurse back into the registry for their
// element types. A container of encode-only elements is itself
// encode-only.
func sliceRule(t reflect.Type) *rule {
	er := ruleFor(t.Elem())
	if er == nil {
		return nil
	}
	r := &rule{
		enc: func(v reflect.Value) *ir.Node {
			n := ir.Sequence()
			for i := 0; i < v.Len(); i++ {
				n.Append(er.enc(v.Index(i)))
			}
			return n
		},
	}
	if er.dec == nil {
		return r
	}
	r.dec = func(n *ir.Node, out reflect.Value) bool {
		if n.Kind != ir.SequenceKind {
			return false
		}
		s := reflect.MakeSlice(t, n.Len(), n.Len())
		for i, child := range n.Values {
			if !er.dec(child, s.Index(i)) {
				return false
			}
		}
		out.Set(s)
		return true
	}
	return r
}

func arrayRule(t reflect.Type) *rule {
	er := ruleFor(t.Elem())
	if er == nil {
		return nil
	}
	size := t.Len()
	r := &rule{
		enc: func(v reflect.Value) *ir.Node {
			n := ir.Sequence()
			for i := 0; i < size; i++ {
				n.Append(er.enc(v.Index(i)))
			}
			return n
		},
	}
	if er.dec == nil {
		return r
	}
	r.dec = func(n *ir.Node, out reflect.Value) bool {
		if n.Kind != ir.SequenceKind || n.Len() != size {
			return false
		}
		a := reflect.New(t).Elem()
		for i, child := range n.Values {
			if !er.dec(child, a.Index(i)) {
				return false
			}
		}
		out.Set(a)
		return true
	}
	return r
}

func mapRule(t reflect.Type) *rule {
	kr := ruleFor(t.Key())
	vr := ruleFor(t.Elem())
	if kr == nil || vr == nil {
		return nil
	}
	r := &rule{
		enc: func(v reflect.Value) *ir.Node {
			n := ir.Map()
			iter := v.MapRange()
			for iter.Next() {
				n.ForceInsert(kr.enc(iter.Key()), vr.enc(iter.Value()))
			}
			return n
		},
	}
	if kr.dec == nil || vr.dec == nil {
		return r
	}
	r.dec = func(n *ir.Node, out reflect.Value) bool {
		if n.Kind != ir.MapKind {
			return false
		}
		m := reflect.MakeMapWithSize(t, n.Len())
		kv := reflect.New(t.Key()).Elem()
		vv := reflect.New(t.Elem()).Elem()
		for i := range n.Values {
			if !kr.dec(n.Fields[i], kv) {
				return false
			}
			if !vr.dec(n.Values[i], vv) {
				return false
			}
			// a later duplicate key overwrites the earlier value
			m.SetMapIndex(kv, vv)
		}
		out.Set(m)
		return true
	}
	return r
}

var pairPkgPath = reflect.TypeFor[Pair[int, int]]().PkgPath()

func isPair(t reflect.Type) bool {
	return t.PkgPath() == pairPkgPath && strings.HasPrefix(t.Name(), "Pair[")
}

func pairRule(t reflect.Type) *rule {
	fr := ruleFor(t.Field(0).Type)
	sr := ruleFor(t.Field(1).Type)
	if fr == nil || sr == nil {
		return nil
	}
	r := &rule{
		enc: func(v reflect.Value) *ir.Node {
			n := ir.Sequence()
			n.Append(fr.enc(v.Field(0)))
			n.Append(sr.enc(v.Field(1)))
			return n
		},
	}
	if fr.dec == nil || sr.dec == nil {
		return r
	}
	r.dec = func(n *ir.Node, out reflect.Value) bool {
		if n.Kind != ir.SequenceKind || n.Len() != 2 {
			return false
		}
		p := reflect.New(t).Elem()
		if !fr.dec(n.Values[0], p.Field(0)) {
			return false
		}
		if !sr.dec(n.Values[1], p.Field(1)) {
			return false
		}
		out.Set(p)
		return true
	}
	return r
}
