package decode

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/arthur-debert/insightdump/pkg/render"
)

// Block is one HCL block. Body holds attributes and nested blocks in source
// order; nested blocks of the same type are grouped in a slice under the
// block type.
type Block struct {
	Type   string
	Labels []string
	Body   *render.OrderedMap
}

// decodeHCL reads an HCL file in native syntax. Attribute expressions are
// evaluated without variables or functions.
func decodeHCL(data []byte, name string) (any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected HCL body type %T", file.Body)
	}
	return fromBody(body)
}

type bodyItem struct {
	pos   hcl.Pos
	attr  *hclsyntax.Attribute
	block *hclsyntax.Block
}

func fromBody(body *hclsyntax.Body) (*render.OrderedMap, error) {
	items := make([]bodyItem, 0, len(body.Attributes)+len(body.Blocks))
	for _, a := range body.Attributes {
		items = append(items, bodyItem{pos: a.SrcRange.Start, attr: a})
	}
	for _, b := range body.Blocks {
		items = append(items, bodyItem{pos: b.TypeRange.Start, block: b})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].pos.Byte < items[j].pos.Byte
	})

	out := render.NewOrderedMap(len(items))
	for _, item := range items {
		if item.attr != nil {
			val, diags := item.attr.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			native, err := fromCty(val)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", item.attr.Name, err)
			}
			out.Set(item.attr.Name, native)
			continue
		}

		b := item.block
		nested, err := fromBody(b.Body)
		if err != nil {
			return nil, fmt.Errorf("in block %q: %w", b.Type, err)
		}
		block := &Block{Type: b.Type, Labels: b.Labels, Body: nested}

		existing, _ := out.Get(b.Type)
		blocks, _ := existing.([]*Block)
		out.Set(b.Type, append(blocks, block))
	}
	return out, nil
}

// fromCty converts an evaluated value to its closest Go counterpart.
// Numbers that are whole and fit become int64, others float64.
func fromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		return fromNumber(v.AsBigFloat()), nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0)
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			native, err := fromCty(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := render.NewOrderedMap(0)
		for it := v.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			native, err := fromCty(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			m.Set(key.AsString(), native)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}

func fromNumber(f *big.Float) any {
	if f.IsInt() {
		if i, acc := f.Int64(); acc == big.Exact {
			return i
		}
	}
	v, _ := f.Float64()
	return v
}
