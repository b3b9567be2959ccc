package ir

// Equal reports deep structural equality of two trees. Map pairs compare in
// order. Equal is the key identity relation used by Insert.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Text != b.Text {
		return false
	}
	if len(a.Fields) != len(b.Fields) || len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Fields {
		if !Equal(a.Fields[i], b.Fields[i]) {
			return false
		}
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
