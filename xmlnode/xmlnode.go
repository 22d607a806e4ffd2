// Package xmlnode exposes the minimal namespace-aware lookup surface a
// document reader needs over a parsed XML tree: single and multi node
// lookup by qualified path, text content, and attribute access.
//
// It wraps libxml2; lookup paths are XPath expressions relative to the
// node they are evaluated against.
package xmlnode

import (
	"fmt"
	"strings"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/types"
	"github.com/lestrrat-go/libxml2/xpath"
)

// Document wraps a parsed XML tree together with its namespace
// bindings.
type Document struct {
	doc  types.Document
	ctx  *xpath.Context
	root *Node
}

// Parse builds a document tree from raw XML. The namespaces map binds
// the prefixes used in lookup paths to namespace URIs; resolution is by
// URI, so the prefixes declared in the document itself do not need to
// match.
func Parse(data []byte, namespaces map[string]string) (*Document, error) {
	doc, err := libxml2.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	root, err := doc.DocumentElement()
	if err != nil {
		doc.Free()
		return nil, fmt.Errorf("reading document root: %w", err)
	}

	ctx, err := xpath.NewContext(root)
	if err != nil {
		doc.Free()
		return nil, err
	}
	for prefix, uri := range namespaces {
		if err := ctx.RegisterNS(prefix, uri); err != nil {
			ctx.Free()
			doc.Free()
			return nil, fmt.Errorf("registering namespace %q: %w", prefix, err)
		}
	}

	d := &Document{doc: doc, ctx: ctx}
	d.root = &Node{node: root, ctx: ctx}
	return d, nil
}

// Root returns the document element.
func (d *Document) Root() *Node {
	return d.root
}

// Free releases the underlying tree. The document and every node
// obtained from it must not be used afterwards.
func (d *Document) Free() {
	d.ctx.Free()
	d.doc.Free()
}

// Node is a single element within a Document.
type Node struct {
	node types.Node
	ctx  *xpath.Context
}

// First returns the first descendant matching the qualified path, in
// document order, or nil when the path matches nothing. The error
// return is reserved for ill-formed paths.
func (n *Node) First(path string) (*Node, error) {
	nodes, err := n.All(path)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// All returns every descendant matching the qualified path, in document
// order.
func (n *Node) All(path string) ([]*Node, error) {
	if err := n.ctx.SetContextNode(n.node); err != nil {
		return nil, err
	}
	res, err := n.ctx.Find(path)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", path, err)
	}
	defer res.Free()

	var out []*Node
	iter := res.NodeIter()
	for iter.Next() {
		out = append(out, &Node{node: iter.Node(), ctx: n.ctx})
	}
	return out, nil
}

// Text returns the node's text content with surrounding whitespace
// removed.
func (n *Node) Text() string {
	return strings.TrimSpace(n.node.TextContent())
}

// Attr returns the raw value of the named attribute and whether it is
// present on the node.
func (n *Node) Attr(name string) (string, bool) {
	el, ok := n.node.(types.Element)
	if !ok {
		return "", false
	}
	attr, err := el.GetAttribute(name)
	if err != nil {
		return "", false
	}
	return attr.Value(), true
}
