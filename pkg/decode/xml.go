package decode

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/insightdump/pkg/render"
)

// Element is one XML element
type Element struct {
	Tag        string
	Attributes *render.OrderedMap
	Text       string
	Children   []*Element
}

func decodeXML(data []byte) (any, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return fromElement(root), nil
}

func fromElement(e *etree.Element) *Element {
	out := &Element{
		Tag:        e.FullTag(),
		Attributes: render.NewOrderedMap(len(e.Attr)),
		Text:       strings.TrimSpace(e.Text()),
	}
	for _, a := range e.Attr {
		out.Attributes.Set(a.FullKey(), a.Value)
	}
	for _, c := range e.ChildElements() {
		out.Children = append(out.Children, fromElement(c))
	}
	return out
}
