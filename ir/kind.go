package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	ScalarKind
	SequenceKind
	MapKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:     "Null",
		ScalarKind:   "Scalar",
		SequenceKind: "Sequence",
		MapKind:      "Map",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"Scalar":   ScalarKind,
		"Sequence": SequenceKind,
		"Map":      MapKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		ScalarKind,
		SequenceKind,
		MapKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case SequenceKind, MapKind:
		return false
	default:
		return true
	}
}
