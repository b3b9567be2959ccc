// Package yamlio bridges YAML text and ir document trees. Parsing goes
// through goccy/go-yaml's parser, not its unmarshaller, so scalar text
// reaches the codecs exactly as written in the source.
package yamlio

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/mica-format/go-mica/debug"
	"github.com/mica-format/go-mica/ir"
)

var (
	ErrParse       = errors.New("parse error")
	ErrUnsupported = errors.New("unsupported yaml construct")
)

// Parse reads one YAML document into a tree. Empty input yields a Null
// node. Multiple documents and unresolved aliases are errors.
func Parse(d []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Docs) == 0 {
		return ir.Null(), nil
	}
	if len(f.Docs) > 1 {
		return nil, fmt.Errorf("%w: %d documents, want one", ErrUnsupported, len(f.Docs))
	}
	body := f.Docs[0].Body
	if body == nil {
		return ir.Null(), nil
	}
	n, err := fromAST(body)
	if err != nil {
		return nil, err
	}
	if debug.Yaml() {
		debug.Logf("parsed %s\n", n)
	}
	return n, nil
}

func fromAST(a ast.Node) (*ir.Node, error) {
	switch x := a.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.StringNode:
		return ir.Scalar(x.Value), nil
	case *ast.LiteralNode:
		return ir.Scalar(x.Value.Value), nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		// raw token text, so forms like 0x2a or .inf stay disambiguable
		return ir.Scalar(a.GetToken().Value), nil
	case *ast.SequenceNode:
		n := ir.Sequence()
		for _, v := range x.Values {
			child, err := fromAST(v)
			if err != nil {
				return nil, err
			}
			n.Append(child)
		}
		return n, nil
	case *ast.MappingNode:
		n := ir.Map()
		for _, kv := range x.Values {
			if err := insertPair(n, kv); err != nil {
				return nil, err
			}
		}
		return n, nil
	case *ast.MappingValueNode:
		n := ir.Map()
		if err := insertPair(n, x); err != nil {
			return nil, err
		}
		return n, nil
	case *ast.TagNode:
		return fromAST(x.Value)
	case *ast.AnchorNode:
		return fromAST(x.Value)
	case *ast.AliasNode:
		return nil, fmt.Errorf("%w: alias", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, a)
	}
}

func insertPair(n *ir.Node, kv *ast.MappingValueNode) error {
	key, err := fromAST(kv.Key)
	if err != nil {
		return err
	}
	val, err := fromAST(kv.Value)
	if err != nil {
		return err
	}
	n.ForceInsert(key, val)
	return nil
}

// Interface converts a tree to plain Go values. Scalars stay strings; map
// keys must be scalar or null.
func Interface(n *ir.Node) (any, error) {
	switch n.Kind {
	case ir.NullKind:
		return nil, nil
	case ir.ScalarKind:
		return n.Text, nil
	case ir.SequenceKind:
		out := make([]any, 0, n.Len())
		for _, v := range n.Values {
			x, err := Interface(v)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
		return out, nil
	case ir.MapKind:
		out := make(map[string]any, n.Len())
		for i := range n.Values {
			f := n.Fields[i]
			var key string
			switch f.Kind {
			case ir.ScalarKind:
				key = f.Text
			case ir.NullKind:
				key = ""
			default:
				return nil, fmt.Errorf("%w: %s map key", ErrUnsupported, f.Kind)
			}
			x, err := Interface(n.Values[i])
			if err != nil {
				return nil, err
			}
			out[key] = x
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s node", ErrUnsupported, n.Kind)
	}
}

// Marshal renders a tree as YAML. Formatting is entirely goccy's; scalar
// typing is not reconstructed, so scalars come out as strings.
func Marshal(n *ir.Node) ([]byte, error) {
	v, err := Interface(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(v)
}
