// Package dom is the small document model the contract checks read.
//
// It wraps golang.org/x/net/html nodes and answers the handful of questions
// an accessibility assertion asks: attribute values, text content, inline
// style, tree ancestry, and which element holds focus. Queries are XPath
// expressions evaluated by htmlquery.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Document is a parsed HTML document plus the focus state the interaction
// layer maintains on top of it.
type Document struct {
	root   *html.Node
	active *html.Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("parse html: nil reader")
	}
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// MustParseString is ParseString for fixtures; it panics on error.
func MustParseString(s string) *Document {
	doc, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return doc
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Body returns the body element, or the document element when there is no body.
func (d *Document) Body() *Element {
	if d == nil || d.root == nil {
		return nil
	}
	if body := htmlquery.FindOne(d.root, "//body"); body != nil {
		return Wrap(body)
	}
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return Wrap(c)
		}
	}
	return nil
}

// Query returns the first element matching the XPath expression, or nil.
func (d *Document) Query(expr string) (*Element, error) {
	if d == nil || d.root == nil {
		return nil, nil
	}
	n, err := htmlquery.Query(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return Wrap(n), nil
}

// QueryAll returns every element matching the XPath expression in document order.
func (d *Document) QueryAll(expr string) ([]*Element, error) {
	if d == nil || d.root == nil {
		return nil, nil
	}
	nodes, err := htmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", expr, err)
	}
	return wrapAll(nodes), nil
}

// Select evaluates a compiled expression and returns the first element match.
func (d *Document) Select(expr *xpath.Expr) *Element {
	if d == nil || d.root == nil || expr == nil {
		return nil
	}
	return Wrap(htmlquery.QuerySelector(d.root, expr))
}

// SelectAll evaluates a compiled expression and returns every element match.
func (d *Document) SelectAll(expr *xpath.Expr) []*Element {
	if d == nil || d.root == nil || expr == nil {
		return nil
	}
	return wrapAll(htmlquery.QuerySelectorAll(d.root, expr))
}

// ByID returns the first element whose id is exactly id, or nil.
func (d *Document) ByID(id string) *Element {
	if d == nil || d.root == nil || id == "" {
		return nil
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attrValue(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return Wrap(found)
}

// AttrEquals returns every element whose attribute name is exactly value,
// in document order.
func (d *Document) AttrEquals(name, value string) []*Element {
	if d == nil || d.root == nil {
		return nil
	}
	name = strings.ToLower(name)
	var out []*Element
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := attrLookup(n, name); ok && v == value {
				out = append(out, Wrap(n))
			}
		}
		return true
	})
	return out
}

// ActiveElement returns the focused element. Like a browser, it falls back to
// the body when nothing is focused or the focused element left the document.
func (d *Document) ActiveElement() *Element {
	if d == nil {
		return nil
	}
	if d.active != nil && d.connected(d.active) {
		return Wrap(d.active)
	}
	return d.Body()
}

// Focus moves focus to el. A nil element blurs.
func (d *Document) Focus(el *Element) {
	if d == nil {
		return
	}
	d.active = el.Node()
}

// Blur clears focus.
func (d *Document) Blur() {
	if d == nil {
		return
	}
	d.active = nil
}

// GetByText returns the first leaf element under the body whose text content
// is exactly text. Elements with element children are skipped, their
// descendants are still visited.
func (d *Document) GetByText(text string) *Element {
	body := d.Body()
	if body == nil {
		return nil
	}
	var found *html.Node
	walk(body.node, func(n *html.Node) bool {
		if n == body.node || n.Type != html.ElementNode {
			return true
		}
		if hasElementChild(n) {
			return true
		}
		if htmlquery.InnerText(n) == text {
			found = n
			return false
		}
		return true
	})
	return Wrap(found)
}

func (d *Document) connected(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == d.root {
			return true
		}
	}
	return false
}

// walk visits n and its descendants in document order until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

func wrapAll(nodes []*html.Node) []*Element {
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n != nil && n.Type == html.ElementNode {
			out = append(out, Wrap(n))
		}
	}
	return out
}
