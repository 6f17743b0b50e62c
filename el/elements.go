package el

import "github.com/vango-dev/welgo/pkg/vdom"

// Document

func Html(props Props, children ...any) *Element     { return vdom.H("html", props, children...) }
func Head(props Props, children ...any) *Element     { return vdom.H("head", props, children...) }
func Body(props Props, children ...any) *Element     { return vdom.H("body", props, children...) }
func Title(props Props, children ...any) *Element    { return vdom.H("title", props, children...) }
func Meta(props Props, children ...any) *Element     { return vdom.H("meta", props, children...) }
func Link(props Props, children ...any) *Element     { return vdom.H("link", props, children...) }
func Base(props Props, children ...any) *Element     { return vdom.H("base", props, children...) }
func Style(props Props, children ...any) *Element    { return vdom.H("style", props, children...) }
func Script(props Props, children ...any) *Element   { return vdom.H("script", props, children...) }
func Noscript(props Props, children ...any) *Element { return vdom.H("noscript", props, children...) }

// Sections

func Header(props Props, children ...any) *Element  { return vdom.H("header", props, children...) }
func Footer(props Props, children ...any) *Element  { return vdom.H("footer", props, children...) }
func Main(props Props, children ...any) *Element    { return vdom.H("main", props, children...) }
func Nav(props Props, children ...any) *Element     { return vdom.H("nav", props, children...) }
func Section(props Props, children ...any) *Element { return vdom.H("section", props, children...) }
func Article(props Props, children ...any) *Element { return vdom.H("article", props, children...) }
func Aside(props Props, children ...any) *Element   { return vdom.H("aside", props, children...) }
func Address(props Props, children ...any) *Element { return vdom.H("address", props, children...) }
func H1(props Props, children ...any) *Element      { return vdom.H("h1", props, children...) }
func H2(props Props, children ...any) *Element      { return vdom.H("h2", props, children...) }
func H3(props Props, children ...any) *Element      { return vdom.H("h3", props, children...) }
func H4(props Props, children ...any) *Element      { return vdom.H("h4", props, children...) }
func H5(props Props, children ...any) *Element      { return vdom.H("h5", props, children...) }
func H6(props Props, children ...any) *Element      { return vdom.H("h6", props, children...) }
func Hgroup(props Props, children ...any) *Element  { return vdom.H("hgroup", props, children...) }

// Grouping

func Div(props Props, children ...any) *Element        { return vdom.H("div", props, children...) }
func P(props Props, children ...any) *Element          { return vdom.H("p", props, children...) }
func Span(props Props, children ...any) *Element       { return vdom.H("span", props, children...) }
func Pre(props Props, children ...any) *Element        { return vdom.H("pre", props, children...) }
func Blockquote(props Props, children ...any) *Element { return vdom.H("blockquote", props, children...) }
func Ul(props Props, children ...any) *Element         { return vdom.H("ul", props, children...) }
func Ol(props Props, children ...any) *Element         { return vdom.H("ol", props, children...) }
func Li(props Props, children ...any) *Element         { return vdom.H("li", props, children...) }
func Dl(props Props, children ...any) *Element         { return vdom.H("dl", props, children...) }
func Dt(props Props, children ...any) *Element         { return vdom.H("dt", props, children...) }
func Dd(props Props, children ...any) *Element         { return vdom.H("dd", props, children...) }
func Hr(props Props, children ...any) *Element         { return vdom.H("hr", props, children...) }
func Figure(props Props, children ...any) *Element     { return vdom.H("figure", props, children...) }
func Figcaption(props Props, children ...any) *Element { return vdom.H("figcaption", props, children...) }

// Text-level

func A(props Props, children ...any) *Element      { return vdom.H("a", props, children...) }
func Strong(props Props, children ...any) *Element { return vdom.H("strong", props, children...) }
func Em(props Props, children ...any) *Element     { return vdom.H("em", props, children...) }
func B(props Props, children ...any) *Element      { return vdom.H("b", props, children...) }
func I(props Props, children ...any) *Element      { return vdom.H("i", props, children...) }
func U(props Props, children ...any) *Element      { return vdom.H("u", props, children...) }
func S(props Props, children ...any) *Element      { return vdom.H("s", props, children...) }
func Small(props Props, children ...any) *Element  { return vdom.H("small", props, children...) }
func Mark(props Props, children ...any) *Element   { return vdom.H("mark", props, children...) }
func Sub(props Props, children ...any) *Element    { return vdom.H("sub", props, children...) }
func Sup(props Props, children ...any) *Element    { return vdom.H("sup", props, children...) }
func Code(props Props, children ...any) *Element   { return vdom.H("code", props, children...) }
func Kbd(props Props, children ...any) *Element    { return vdom.H("kbd", props, children...) }
func Samp(props Props, children ...any) *Element   { return vdom.H("samp", props, children...) }
func Var(props Props, children ...any) *Element    { return vdom.H("var", props, children...) }
func Abbr(props Props, children ...any) *Element   { return vdom.H("abbr", props, children...) }
func Time(props Props, children ...any) *Element   { return vdom.H("time", props, children...) }
func Cite(props Props, children ...any) *Element   { return vdom.H("cite", props, children...) }
func Q(props Props, children ...any) *Element      { return vdom.H("q", props, children...) }
func Dfn(props Props, children ...any) *Element    { return vdom.H("dfn", props, children...) }
func Br(props Props, children ...any) *Element     { return vdom.H("br", props, children...) }
func Wbr(props Props, children ...any) *Element    { return vdom.H("wbr", props, children...) }

// Forms

func Form(props Props, children ...any) *Element     { return vdom.H("form", props, children...) }
func Input(props Props, children ...any) *Element    { return vdom.H("input", props, children...) }
func Textarea(props Props, children ...any) *Element { return vdom.H("textarea", props, children...) }
func Select(props Props, children ...any) *Element   { return vdom.H("select", props, children...) }
func Option(props Props, children ...any) *Element   { return vdom.H("option", props, children...) }
func Optgroup(props Props, children ...any) *Element { return vdom.H("optgroup", props, children...) }
func Button(props Props, children ...any) *Element   { return vdom.H("button", props, children...) }
func Label(props Props, children ...any) *Element    { return vdom.H("label", props, children...) }
func Fieldset(props Props, children ...any) *Element { return vdom.H("fieldset", props, children...) }
func Legend(props Props, children ...any) *Element   { return vdom.H("legend", props, children...) }
func Datalist(props Props, children ...any) *Element { return vdom.H("datalist", props, children...) }
func Output(props Props, children ...any) *Element   { return vdom.H("output", props, children...) }
func Progress(props Props, children ...any) *Element { return vdom.H("progress", props, children...) }
func Meter(props Props, children ...any) *Element    { return vdom.H("meter", props, children...) }

// Tables

func Table(props Props, children ...any) *Element    { return vdom.H("table", props, children...) }
func Thead(props Props, children ...any) *Element    { return vdom.H("thead", props, children...) }
func Tbody(props Props, children ...any) *Element    { return vdom.H("tbody", props, children...) }
func Tfoot(props Props, children ...any) *Element    { return vdom.H("tfoot", props, children...) }
func Tr(props Props, children ...any) *Element       { return vdom.H("tr", props, children...) }
func Th(props Props, children ...any) *Element       { return vdom.H("th", props, children...) }
func Td(props Props, children ...any) *Element       { return vdom.H("td", props, children...) }
func Caption(props Props, children ...any) *Element  { return vdom.H("caption", props, children...) }
func Colgroup(props Props, children ...any) *Element { return vdom.H("colgroup", props, children...) }
func Col(props Props, children ...any) *Element      { return vdom.H("col", props, children...) }

// Embedded

func Img(props Props, children ...any) *Element     { return vdom.H("img", props, children...) }
func Picture(props Props, children ...any) *Element { return vdom.H("picture", props, children...) }
func Source(props Props, children ...any) *Element  { return vdom.H("source", props, children...) }
func Video(props Props, children ...any) *Element   { return vdom.H("video", props, children...) }
func Audio(props Props, children ...any) *Element   { return vdom.H("audio", props, children...) }
func Track(props Props, children ...any) *Element   { return vdom.H("track", props, children...) }
func Iframe(props Props, children ...any) *Element  { return vdom.H("iframe", props, children...) }
func Embed(props Props, children ...any) *Element   { return vdom.H("embed", props, children...) }
func Canvas(props Props, children ...any) *Element  { return vdom.H("canvas", props, children...) }
func Svg(props Props, children ...any) *Element     { return vdom.H("svg", props, children...) }
func Path(props Props, children ...any) *Element    { return vdom.H("path", props, children...) }
func Circle(props Props, children ...any) *Element  { return vdom.H("circle", props, children...) }
func Rect(props Props, children ...any) *Element    { return vdom.H("rect", props, children...) }
func G(props Props, children ...any) *Element       { return vdom.H("g", props, children...) }

// Interactive

func Details(props Props, children ...any) *Element  { return vdom.H("details", props, children...) }
func Summary(props Props, children ...any) *Element  { return vdom.H("summary", props, children...) }
func Dialog(props Props, children ...any) *Element   { return vdom.H("dialog", props, children...) }
func Menu(props Props, children ...any) *Element     { return vdom.H("menu", props, children...) }
func Template(props Props, children ...any) *Element { return vdom.H("template", props, children...) }
func Slot(props Props, children ...any) *Element     { return vdom.H("slot", props, children...) }

// Custom creates an element with an arbitrary tag name, for custom
// elements and tags not covered above.
func Custom(tag string, props Props, children ...any) *Element {
	return vdom.H(tag, props, children...)
}
