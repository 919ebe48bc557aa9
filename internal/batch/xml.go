package batch

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// XMLDocument is a parsed import document with its recognized sections.
// A section slice is nil when the document does not carry that section.
type XMLDocument struct {
	Employees   []map[string]any
	Roles       []any
	Departments []any
}

type xmlNode struct {
	name     string
	attrs    map[string]string
	children []*xmlNode
	text     strings.Builder
}

// ParseXMLDocument decodes an import document. Element and attribute names
// are matched case-insensitively in snake_case, camelCase and PascalCase
// spellings. A section holding a single record and one holding a list of
// records both normalize to a list.
func ParseXMLDocument(data []byte) (*XMLDocument, error) {
	root, err := decodeTree(data)
	if err != nil {
		return nil, fmt.Errorf("invalid xml: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("invalid xml: empty document")
	}

	doc := &XMLDocument{}
	collectSections(root, doc)
	if doc.Employees == nil && doc.Roles == nil && doc.Departments == nil {
		return nil, fmt.Errorf("no employees/roles/departments section found")
	}
	return doc, nil
}

func decodeTree(data []byte) (*xmlNode, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []*xmlNode
	var root *xmlNode
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := &xmlNode{name: t.Name.Local, attrs: map[string]string{}}
			for _, a := range t.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].text.Write(t)
			}
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("unclosed element %q", stack[len(stack)-1].name)
	}
	return root, nil
}

func collectSections(n *xmlNode, doc *XMLDocument) {
	switch canonKey(n.name) {
	case "employees":
		doc.Employees = append(doc.Employees, employeeRecords(n)...)
		return
	case "roles":
		doc.Roles = append(doc.Roles, nameEntries(n)...)
		return
	case "departments":
		doc.Departments = append(doc.Departments, nameEntries(n)...)
		return
	}
	for _, c := range n.children {
		collectSections(c, doc)
	}
}

// employeeRecords normalizes an Employees section to a list of raw records.
// The section may wrap one record element per employee, or be a single
// record itself (fields as leaf elements, attributes, or both).
func employeeRecords(section *xmlNode) []map[string]any {
	if len(section.children) == 0 {
		if len(section.attrs) > 0 {
			return []map[string]any{recordMap(section)}
		}
		return nil
	}
	singleObject := true
	for _, c := range section.children {
		if len(c.children) > 0 || len(c.attrs) > 0 {
			singleObject = false
			break
		}
	}
	if singleObject {
		return []map[string]any{recordMap(section)}
	}
	out := make([]map[string]any, 0, len(section.children))
	for _, c := range section.children {
		out = append(out, recordMap(c))
	}
	return out
}

// recordMap flattens one record element: attributes plus leaf children,
// keys kept as written (field lookup folds the case later).
func recordMap(n *xmlNode) map[string]any {
	m := make(map[string]any, len(n.attrs)+len(n.children))
	for k, v := range n.attrs {
		m[k] = v
	}
	for _, c := range n.children {
		if _, exists := m[c.name]; exists {
			continue
		}
		m[c.name] = strings.TrimSpace(c.text.String())
	}
	return m
}

// nameEntries normalizes a Roles/Departments section: leaf children are bare
// names, element children with structure become objects.
func nameEntries(section *xmlNode) []any {
	out := make([]any, 0, len(section.children))
	for _, c := range section.children {
		if len(c.children) == 0 && len(c.attrs) == 0 {
			out = append(out, strings.TrimSpace(c.text.String()))
			continue
		}
		m := recordMap(c)
		out = append(out, m)
	}
	if len(out) == 0 {
		// section itself may be a single bare name
		if s := strings.TrimSpace(section.text.String()); s != "" {
			out = append(out, s)
		}
	}
	return out
}
