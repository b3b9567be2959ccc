package convert

import (
	"encoding/base64"

	"github.com/mica-format/go-mica/ir"
)

// Bytes holds opaque binary payloads as base64 scalars.
var Bytes Codec[[]byte] = bytesCodec{}

type bytesCodec struct{}

func (bytesCodec) Encode(b []byte) *ir.Node {
	return ir.Scalar(base64.StdEncoding.EncodeToString(b))
}

func (bytesCodec) Decode(n *ir.Node) ([]byte, bool) {
	if n.Kind != ir.ScalarKind {
		return nil, false
	}
	d, err := base64.StdEncoding.DecodeString(n.Text)
	if err != nil {
		return nil, false
	}
	// a decoder handing back nothing for non-empty text was fed garbage
	if len(d) == 0 && len(n.Text) > 0 {
		return nil, false
	}
	return d, true
}
