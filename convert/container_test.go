package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mica-format/go-mica/ir"
)

func TestSliceRoundTrip(t *testing.T) {
	c := SliceOf(Int)
	for _, v := range [][]int{nil, {}, {1}, {-3, 0, 42}} {
		got, ok := c.Decode(c.Encode(v))
		if !ok {
			t.Fatalf("round trip of %v failed", v)
		}
		if diff := cmp.Diff(v, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("round trip of %v (-want +got):\n%s", v, diff)
		}
	}
}

func TestSliceDecodeFailure(t *testing.T) {
	c := SliceOf(Int)
	if _, ok := c.Decode(ir.Map()); ok {
		t.Errorf("map decoded as slice")
	}
	if _, ok := c.Decode(ir.Scalar("1")); ok {
		t.Errorf("scalar decoded as slice")
	}
	// a failing element fails the whole decode, nothing is handed back
	n := ir.Sequence(ir.Scalar("1"), ir.Scalar("two"), ir.Scalar("3"))
	got, ok := c.Decode(n)
	if ok || got != nil {
		t.Errorf("Decode = %v, %v; want nil, false", got, ok)
	}
}

func TestNestedSlices(t *testing.T) {
	c := SliceOf(SliceOf(String))
	v := [][]string{{"a"}, {"b", "c"}, {}}
	got, ok := c.Decode(c.Encode(v))
	if !ok {
		t.Fatalf("round trip failed")
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestArrayLengths(t *testing.T) {
	c := ArrayOf[[5]int](Int)
	v := [5]int{1, 2, 3, 4, 5}
	got, ok := c.Decode(c.Encode(v))
	if !ok || got != v {
		t.Fatalf("round trip of %v = %v, %v", v, got, ok)
	}

	four := ir.Sequence(ir.Scalar("1"), ir.Scalar("2"), ir.Scalar("3"), ir.Scalar("4"))
	if _, ok := c.Decode(four); ok {
		t.Errorf("4 children decoded into [5]int")
	}
	six := ir.Sequence(ir.Scalar("1"), ir.Scalar("2"), ir.Scalar("3"),
		ir.Scalar("4"), ir.Scalar("5"), ir.Scalar("6"))
	if _, ok := c.Decode(six); ok {
		t.Errorf("6 children decoded into [5]int")
	}
	if _, ok := c.Decode(ir.Map()); ok {
		t.Errorf("map decoded into [5]int")
	}
}

func TestArrayOfShapePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("ArrayOf with a non-array type did not panic")
		}
	}()
	ArrayOf[[]int](Int)
}

func TestPair(t *testing.T) {
	c := PairOf(String, Int)
	v := Pair[string, int]{First: "answer", Second: 42}
	got, ok := c.Decode(c.Encode(v))
	if !ok || got != v {
		t.Fatalf("round trip of %v = %v, %v", v, got, ok)
	}

	three := ir.Sequence(ir.Scalar("a"), ir.Scalar("1"), ir.Scalar("2"))
	if _, ok := c.Decode(three); ok {
		t.Errorf("3 children decoded into a pair")
	}
	one := ir.Sequence(ir.Scalar("a"))
	if _, ok := c.Decode(one); ok {
		t.Errorf("1 child decoded into a pair")
	}
	if _, ok := c.Decode(ir.Map()); ok {
		t.Errorf("map decoded into a pair")
	}
	swapped := ir.Sequence(ir.Scalar("42"), ir.Scalar("answer"))
	if _, ok := c.Decode(swapped); ok {
		t.Errorf("mistyped children decoded into a pair")
	}
}

func TestMapRoundTrip(t *testing.T) {
	c := MapOf(String, Int)
	v := map[string]int{"a": 1, "b": 2, "c": -3}
	got, ok := c.Decode(c.Encode(v))
	if !ok {
		t.Fatalf("round trip failed")
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestMapDuplicateKeyLaterWins(t *testing.T) {
	n := ir.Map()
	n.ForceInsert(ir.Scalar("a"), ir.Scalar("1"))
	n.ForceInsert(ir.Scalar("b"), ir.Scalar("2"))
	n.ForceInsert(ir.Scalar("a"), ir.Scalar("3"))
	got, ok := MapOf(String, Int).Decode(n)
	if !ok {
		t.Fatalf("decode failed")
	}
	want := map[string]int{"a": 3, "b": 2}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode (-want +got):\n%s", diff)
	}
}

func TestMapDecodeFailure(t *testing.T) {
	c := MapOf(String, Int)
	if _, ok := c.Decode(ir.Sequence()); ok {
		t.Errorf("sequence decoded as map")
	}
	bad := ir.Map()
	bad.ForceInsert(ir.Scalar("a"), ir.Scalar("one"))
	if got, ok := c.Decode(bad); ok || got != nil {
		t.Errorf("Decode = %v, %v; want nil, false", got, ok)
	}
	badKey := ir.Map()
	badKey.ForceInsert(ir.Sequence(), ir.Scalar("1"))
	if _, ok := c.Decode(badKey); ok {
		t.Errorf("sequence key decoded as string")
	}
}

func TestIntKeyedMap(t *testing.T) {
	c := MapOf(Int, String)
	v := map[int]string{-1: "a", 42: "b"}
	got, ok := c.Decode(c.Encode(v))
	if !ok {
		t.Fatalf("round trip failed")
	}
	if diff := cmp.Diff(v, got); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestContainerEncodeIsTotal(t *testing.T) {
	// encode never fails, even transitively
	n := SliceOf(MapOf(String, PairOf(Float64, Bytes))).Encode([]map[string]Pair[float64, []byte]{
		{"x": {First: 2.5, Second: []byte("ok")}},
		{},
		nil,
	})
	if n.Kind != ir.SequenceKind || n.Len() != 3 {
		t.Errorf("Encode = %s", n)
	}
}
