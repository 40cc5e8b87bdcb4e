package dom

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a view over an element node. A nil *Element is a valid value
// meaning "no element"; every accessor is safe to call on it.
type Element struct {
	node *html.Node
}

// Wrap returns the element view of n, or nil when n is nil or not an element.
func Wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Element{node: n}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// Equal reports whether both views refer to the same node.
func (e *Element) Equal(other *Element) bool {
	return e.Node() == other.Node()
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	if e == nil {
		return ""
	}
	return strings.ToLower(e.node.Data)
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.Attribute("id")
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	return attrLookup(e.node, strings.ToLower(name))
}

// Attribute returns the attribute value, or "" when absent.
func (e *Element) Attribute(name string) string {
	v, _ := e.Attr(name)
	return v
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Data returns a data-* attribute by its dataset key, e.g. "headlessuiIndex"
// reads data-headlessui-index.
func (e *Element) Data(key string) (string, bool) {
	return e.Attr("data-" + datasetAttr(key))
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(name, value string) {
	if e == nil {
		return
	}
	name = strings.ToLower(name)
	for i := range e.node.Attr {
		if e.node.Attr[i].Namespace == "" && e.node.Attr[i].Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	if e == nil {
		return
	}
	name = strings.ToLower(name)
	kept := e.node.Attr[:0]
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		kept = append(kept, a)
	}
	e.node.Attr = kept
}

// TextContent returns the concatenated text of every descendant text node.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	return htmlquery.InnerText(e.node)
}

// SetTextContent replaces the children with a single text node.
func (e *Element) SetTextContent(text string) {
	if e == nil {
		return
	}
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	if e == nil {
		return nil
	}
	return Wrap(e.node.Parent)
}

// Children returns the element children in order.
func (e *Element) Children() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, Wrap(c))
		}
	}
	return out
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	if e == nil || other == nil {
		return false
	}
	for cur := other.node; cur != nil; cur = cur.Parent {
		if cur == e.node {
			return true
		}
	}
	return false
}

// Remove detaches the element from its parent, modelling an unmount.
func (e *Element) Remove() {
	if e == nil || e.node.Parent == nil {
		return
	}
	e.node.Parent.RemoveChild(e.node)
}

// Disabled reports whether the element carries the disabled attribute.
func (e *Element) Disabled() bool {
	return e.HasAttribute("disabled")
}

// OuterHTML renders the element including itself.
func (e *Element) OuterHTML() string {
	if e == nil {
		return ""
	}
	return htmlquery.OutputHTML(e.node, true)
}

// String returns a short description for failure messages, e.g.
// <button id="headlessui-menu-button-1" role="button">.
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.TagName())
	for _, name := range describedAttrs {
		if v, ok := e.Attr(name); ok {
			b.WriteByte(' ')
			b.WriteString(name)
			b.WriteString(`="`)
			b.WriteString(v)
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	return b.String()
}

var describedAttrs = []string{"id", "role"}

// IsTag reports whether the element is of the given atom.
func (e *Element) IsTag(a atom.Atom) bool {
	if e == nil {
		return false
	}
	if e.node.DataAtom != 0 {
		return e.node.DataAtom == a
	}
	return e.TagName() == a.String()
}

func attrLookup(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func attrValue(n *html.Node, name string) string {
	v, _ := attrLookup(n, name)
	return v
}

// datasetAttr converts a camelCase dataset key into its dash-separated form.
func datasetAttr(key string) string {
	var b strings.Builder
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
