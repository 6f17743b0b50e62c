package render

import (
	"context"
	"io"

	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/vdom"
)

const doctype = "<!DOCTYPE html>\n"

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root element for the page content.
	Body *vdom.Element

	// Title is the page title.
	Title string

	// Meta contains meta tags for the page.
	Meta []MetaTag

	// Links contains link tags (stylesheets, favicon, etc.).
	Links []LinkTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS, emitted without escaping.
	Styles []string

	// Head holds extra children for the head element.
	Head []any

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name      string // name attribute
	Content   string // content attribute
	Property  string // property attribute (for OpenGraph)
	HTTPEquiv string // http-equiv attribute
	Charset   string // charset attribute
}

// LinkTag represents a link element in the document head.
type LinkTag struct {
	Rel         string // rel attribute
	Href        string // href attribute
	Type        string // type attribute
	Sizes       string // sizes attribute
	CrossOrigin string // crossorigin attribute
	Media       string // media attribute
}

// Element builds the html element for the page. Page metadata is escaped
// here because element props are emitted verbatim.
func (p PageData) Element() *vdom.Element {
	lang := p.Lang
	if lang == "" {
		lang = "en"
	}

	head := []any{
		vdom.H("meta", vdom.Props{"charset": "utf-8"}),
		vdom.H("meta", vdom.Props{"name": "viewport", "content": "width=device-width, initial-scale=1"}),
	}
	if p.Title != "" {
		head = append(head, vdom.H("title", nil, p.Title))
	}
	for _, m := range p.Meta {
		head = append(head, vdom.H("meta", attrProps(
			"charset", m.Charset,
			"name", m.Name,
			"property", m.Property,
			"http-equiv", m.HTTPEquiv,
			"content", m.Content,
		)))
	}
	for _, l := range p.Links {
		head = append(head, vdom.H("link", attrProps(
			"rel", l.Rel,
			"href", l.Href,
			"type", l.Type,
			"sizes", l.Sizes,
			"crossorigin", l.CrossOrigin,
			"media", l.Media,
		)))
	}
	for _, href := range p.StyleSheets {
		head = append(head, vdom.H("link", attrProps("rel", "stylesheet", "href", href)))
	}
	for _, css := range p.Styles {
		head = append(head, vdom.H("style", vdom.Props{"dangerouslySetInnerHTML": vdom.InnerHTML(css)}))
	}
	head = append(head, p.Head...)

	return vdom.H("html", vdom.Props{"lang": escapeAttr(lang)},
		vdom.H("head", nil, head),
		vdom.H("body", nil, p.Body),
	)
}

// attrProps builds props from key/value pairs, skipping empty values and
// escaping the rest.
func attrProps(kv ...string) vdom.Props {
	props := make(vdom.Props, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			props[kv[i]] = escapeAttr(kv[i+1])
		}
	}
	return props
}

// RenderPage renders a complete HTML document to the given writer. The
// document is written only once the whole page has rendered.
func (r *Renderer) RenderPage(ctx context.Context, w io.Writer, page PageData, rc any) error {
	html, err := r.Render(ctx, page.Element(), rc)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, doctype+html); err != nil {
		return errors.New("E004").Wrap(err)
	}
	return nil
}

// RenderPageString renders a complete HTML document to a string.
func (r *Renderer) RenderPageString(ctx context.Context, page PageData, rc any) (string, error) {
	html, err := r.Render(ctx, page.Element(), rc)
	if err != nil {
		return "", err
	}
	return doctype + html, nil
}
