package document

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/render"
	"github.com/vango-dev/welgo/pkg/vdom"
)

// Document is a parsed page description.
type Document struct {
	// Path is the file the document was read from, if any.
	Path string

	Title       string
	Lang        string
	Meta        []render.MetaTag
	Links       []render.LinkTag
	StyleSheets []string
	Styles      []string

	// Context is the resolver context declared by the document.
	Context map[string]any

	// Body is the root element.
	Body *vdom.Element
}

// header holds the plain fields of a document; the body is built by hand
// from its yaml.Node so errors can point at lines.
type header struct {
	Title       string         `yaml:"title"`
	Lang        string         `yaml:"lang"`
	Meta        []metaTag      `yaml:"meta"`
	Links       []linkTag      `yaml:"links"`
	StyleSheets []string       `yaml:"stylesheets"`
	Styles      []string       `yaml:"styles"`
	Context     map[string]any `yaml:"context"`
	Body        yaml.Node      `yaml:"body"`
}

type metaTag struct {
	Name      string `yaml:"name"`
	Content   string `yaml:"content"`
	Property  string `yaml:"property"`
	HTTPEquiv string `yaml:"httpEquiv"`
	Charset   string `yaml:"charset"`
}

type linkTag struct {
	Rel         string `yaml:"rel"`
	Href        string `yaml:"href"`
	Type        string `yaml:"type"`
	Sizes       string `yaml:"sizes"`
	CrossOrigin string `yaml:"crossOrigin"`
	Media       string `yaml:"media"`
}

// Load reads and parses the document at path.
func Load(path string, reg *Registry) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E023").
			WithDetail(fmt.Sprintf("Could not read %s.", path)).
			Wrap(err)
	}
	return Parse(data, path, reg)
}

// Parse parses a YAML or JSON document. path is used for error locations.
func Parse(data []byte, path string, reg *Registry) (*Document, error) {
	var h header
	if err := yaml.Unmarshal(data, &h); err != nil {
		e := errors.New("E022").WithDetail(err.Error()).Wrap(err)
		if line := yamlErrorLine(err); line > 0 && path != "" {
			e = e.WithLocation(path, line, 1)
		}
		return nil, e
	}

	p := parser{path: path, reg: reg}
	doc := &Document{
		Path:        path,
		Title:       h.Title,
		Lang:        h.Lang,
		StyleSheets: h.StyleSheets,
		Styles:      h.Styles,
		Context:     h.Context,
	}
	for _, m := range h.Meta {
		doc.Meta = append(doc.Meta, render.MetaTag(m))
	}
	for _, l := range h.Links {
		doc.Links = append(doc.Links, render.LinkTag(l))
	}

	if h.Body.Kind != 0 {
		body, err := p.element(&h.Body)
		if err != nil {
			return nil, err
		}
		doc.Body = body
	}
	return doc, nil
}

// Page returns the page data for rendering the document.
func (d *Document) Page() render.PageData {
	return render.PageData{
		Body:        d.Body,
		Title:       d.Title,
		Lang:        d.Lang,
		Meta:        d.Meta,
		Links:       d.Links,
		StyleSheets: d.StyleSheets,
		Styles:      d.Styles,
	}
}

// PropTemplate is the prop holding a node's unresolved template subtree.
const PropTemplate = "template"

type parser struct {
	path string
	reg  *Registry
}

func (p parser) fail(code string, n *yaml.Node, detail string) *errors.WelgoError {
	e := errors.New(code).WithDetail(detail)
	if p.path != "" {
		e = e.WithLocation(p.path, n.Line, n.Column)
	}
	return e
}

// element builds the root element. A scalar or list body is wrapped in a
// fragment.
func (p parser) element(n *yaml.Node) (*vdom.Element, error) {
	child, err := p.child(n)
	if err != nil {
		return nil, err
	}
	if el, ok := child.(*vdom.Element); ok {
		return el, nil
	}
	return vdom.Frag(child), nil
}

// child converts a node into a value vdom.H accepts as a child.
func (p parser) child(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return p.child(n.Alias)
	case yaml.ScalarNode:
		return scalar(n)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := p.child(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return p.mapping(n)
	default:
		return nil, p.fail("E021", n, "Unexpected node.")
	}
}

func (p parser) mapping(n *yaml.Node) (*vdom.Element, error) {
	var tagNode, propsNode, childrenNode, templateNode *yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "tag":
			tagNode = value
		case "props":
			propsNode = value
		case "children":
			childrenNode = value
		case "template":
			templateNode = value
		default:
			return nil, p.fail("E021", key, fmt.Sprintf("Unknown node field %q. Nodes have tag, props, children and template.", key.Value))
		}
	}
	if tagNode == nil || tagNode.Kind != yaml.ScalarNode || tagNode.Value == "" {
		return nil, p.fail("E021", n, "A mapping node needs a tag.")
	}

	tag, err := p.tag(tagNode)
	if err != nil {
		return nil, err
	}

	var props vdom.Props
	if propsNode != nil {
		if propsNode.Kind != yaml.MappingNode {
			return nil, p.fail("E021", propsNode, "props must be a mapping.")
		}
		if err := propsNode.Decode(&props); err != nil {
			return nil, p.fail("E021", propsNode, err.Error())
		}
	}

	if templateNode != nil {
		tmpl, err := p.child(templateNode)
		if err != nil {
			return nil, err
		}
		props = props.With(PropTemplate, tmpl)
	}

	var children []any
	if childrenNode != nil {
		c, err := p.child(childrenNode)
		if err != nil {
			return nil, err
		}
		if list, ok := c.([]any); ok {
			children = list
		} else {
			children = []any{c}
		}
	}
	return vdom.H(tag, props, children...), nil
}

func (p parser) tag(n *yaml.Node) (vdom.Tag, error) {
	name := n.Value
	if tag, ok := p.reg.Lookup(name); ok {
		return tag, nil
	}
	if name == "Fragment" {
		return vdom.Fragment, nil
	}
	if r, _ := utf8.DecodeRuneInString(name); unicode.IsUpper(r) {
		e := p.fail("E020", n, fmt.Sprintf("No component is registered as %q.", name))
		if p.reg != nil {
			if names := p.reg.Names(); len(names) > 0 {
				e = e.WithSuggestion("Registered components: " + strings.Join(names, ", "))
			}
		}
		return vdom.Tag{}, e
	}
	return vdom.TagOf(name), nil
}

func scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := n.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		err := n.Decode(&i)
		return i, err
	case "!!float":
		var f float64
		err := n.Decode(&f)
		return f, err
	default:
		return n.Value, nil
	}
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlErrorLine(err error) int {
	m := yamlLine.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	return line
}
