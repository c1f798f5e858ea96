package el

import "github.com/vellum-dev/vellum/pkg/dom"

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return dom.IsVoidElement(tag)
}

// Document structure elements

func Html(args ...any) *Node  { return dom.NewElement("html", args...) }
func Head(args ...any) *Node  { return dom.NewElement("head", args...) }
func Body(args ...any) *Node  { return dom.NewElement("body", args...) }
func Title(args ...any) *Node { return dom.NewElement("title", args...) }
func Meta(args ...any) *Node  { return dom.NewElement("meta", args...) }
func LinkEl(args ...any) *Node { return dom.NewElement("link", args...) }
func Base(args ...any) *Node  { return dom.NewElement("base", args...) }

// Content sectioning elements

func Header(args ...any) *Node  { return dom.NewElement("header", args...) }
func Footer(args ...any) *Node  { return dom.NewElement("footer", args...) }
func Main(args ...any) *Node    { return dom.NewElement("main", args...) }
func Nav(args ...any) *Node     { return dom.NewElement("nav", args...) }
func Section(args ...any) *Node { return dom.NewElement("section", args...) }
func Article(args ...any) *Node { return dom.NewElement("article", args...) }
func Aside(args ...any) *Node   { return dom.NewElement("aside", args...) }
func Address(args ...any) *Node { return dom.NewElement("address", args...) }
func H1(args ...any) *Node      { return dom.NewElement("h1", args...) }
func H2(args ...any) *Node      { return dom.NewElement("h2", args...) }
func H3(args ...any) *Node      { return dom.NewElement("h3", args...) }
func H4(args ...any) *Node      { return dom.NewElement("h4", args...) }
func H5(args ...any) *Node      { return dom.NewElement("h5", args...) }
func H6(args ...any) *Node      { return dom.NewElement("h6", args...) }
func Hgroup(args ...any) *Node  { return dom.NewElement("hgroup", args...) }

// Text content elements

func Div(args ...any) *Node        { return dom.NewElement("div", args...) }
func P(args ...any) *Node          { return dom.NewElement("p", args...) }
func Span(args ...any) *Node       { return dom.NewElement("span", args...) }
func Pre(args ...any) *Node        { return dom.NewElement("pre", args...) }
func Blockquote(args ...any) *Node { return dom.NewElement("blockquote", args...) }
func Ul(args ...any) *Node         { return dom.NewElement("ul", args...) }
func Ol(args ...any) *Node         { return dom.NewElement("ol", args...) }
func Li(args ...any) *Node         { return dom.NewElement("li", args...) }
func Dl(args ...any) *Node         { return dom.NewElement("dl", args...) }
func Dt(args ...any) *Node         { return dom.NewElement("dt", args...) }
func Dd(args ...any) *Node         { return dom.NewElement("dd", args...) }
func Hr(args ...any) *Node         { return dom.NewElement("hr", args...) }
func Figure(args ...any) *Node     { return dom.NewElement("figure", args...) }
func Figcaption(args ...any) *Node { return dom.NewElement("figcaption", args...) }

// Inline text semantics

func A(args ...any) *Node      { return dom.NewElement("a", args...) }
func Strong(args ...any) *Node { return dom.NewElement("strong", args...) }
func Em(args ...any) *Node     { return dom.NewElement("em", args...) }
func B(args ...any) *Node      { return dom.NewElement("b", args...) }
func I(args ...any) *Node      { return dom.NewElement("i", args...) }
func U(args ...any) *Node      { return dom.NewElement("u", args...) }
func S(args ...any) *Node      { return dom.NewElement("s", args...) }
func Small(args ...any) *Node  { return dom.NewElement("small", args...) }
func Mark(args ...any) *Node   { return dom.NewElement("mark", args...) }
func Sub(args ...any) *Node    { return dom.NewElement("sub", args...) }
func Sup(args ...any) *Node    { return dom.NewElement("sup", args...) }
func Code(args ...any) *Node   { return dom.NewElement("code", args...) }
func Kbd(args ...any) *Node    { return dom.NewElement("kbd", args...) }
func Samp(args ...any) *Node   { return dom.NewElement("samp", args...) }
func Var(args ...any) *Node    { return dom.NewElement("var", args...) }
func Abbr(args ...any) *Node   { return dom.NewElement("abbr", args...) }
func Time_(args ...any) *Node  { return dom.NewElement("time", args...) }
func Cite(args ...any) *Node   { return dom.NewElement("cite", args...) }
func Q(args ...any) *Node      { return dom.NewElement("q", args...) }
func Dfn(args ...any) *Node    { return dom.NewElement("dfn", args...) }
func Br(args ...any) *Node     { return dom.NewElement("br", args...) }
func Wbr(args ...any) *Node    { return dom.NewElement("wbr", args...) }

// Form elements

func Form(args ...any) *Node     { return dom.NewElement("form", args...) }
func Input(args ...any) *Node    { return dom.NewElement("input", args...) }
func Textarea(args ...any) *Node { return dom.NewElement("textarea", args...) }
func Select(args ...any) *Node   { return dom.NewElement("select", args...) }
func Option(args ...any) *Node   { return dom.NewElement("option", args...) }
func Optgroup(args ...any) *Node { return dom.NewElement("optgroup", args...) }
func Button(args ...any) *Node   { return dom.NewElement("button", args...) }
func Label(args ...any) *Node    { return dom.NewElement("label", args...) }
func Fieldset(args ...any) *Node { return dom.NewElement("fieldset", args...) }
func Legend(args ...any) *Node   { return dom.NewElement("legend", args...) }
func Datalist(args ...any) *Node { return dom.NewElement("datalist", args...) }
func Output(args ...any) *Node   { return dom.NewElement("output", args...) }
func Progress(args ...any) *Node { return dom.NewElement("progress", args...) }
func Meter(args ...any) *Node    { return dom.NewElement("meter", args...) }

// Table elements

func Table(args ...any) *Node    { return dom.NewElement("table", args...) }
func Thead(args ...any) *Node    { return dom.NewElement("thead", args...) }
func Tbody(args ...any) *Node    { return dom.NewElement("tbody", args...) }
func Tfoot(args ...any) *Node    { return dom.NewElement("tfoot", args...) }
func Tr(args ...any) *Node       { return dom.NewElement("tr", args...) }
func Th(args ...any) *Node       { return dom.NewElement("th", args...) }
func Td(args ...any) *Node       { return dom.NewElement("td", args...) }
func Caption(args ...any) *Node  { return dom.NewElement("caption", args...) }
func Colgroup(args ...any) *Node { return dom.NewElement("colgroup", args...) }
func Col(args ...any) *Node      { return dom.NewElement("col", args...) }

// Media elements

func Img(args ...any) *Node     { return dom.NewElement("img", args...) }
func Picture(args ...any) *Node { return dom.NewElement("picture", args...) }
func Source(args ...any) *Node  { return dom.NewElement("source", args...) }
func Video(args ...any) *Node   { return dom.NewElement("video", args...) }
func Audio(args ...any) *Node   { return dom.NewElement("audio", args...) }
func Track(args ...any) *Node   { return dom.NewElement("track", args...) }
func Iframe(args ...any) *Node  { return dom.NewElement("iframe", args...) }
func Embed(args ...any) *Node   { return dom.NewElement("embed", args...) }
func Object(args ...any) *Node  { return dom.NewElement("object", args...) }
func Canvas(args ...any) *Node  { return dom.NewElement("canvas", args...) }
func Svg(args ...any) *Node     { return dom.NewElement("svg", args...) }
func Map_(args ...any) *Node    { return dom.NewElement("map", args...) }
func Area(args ...any) *Node    { return dom.NewElement("area", args...) }

// Interactive elements

func Details(args ...any) *Node { return dom.NewElement("details", args...) }
func Summary(args ...any) *Node { return dom.NewElement("summary", args...) }
func Dialog(args ...any) *Node  { return dom.NewElement("dialog", args...) }
func Menu(args ...any) *Node    { return dom.NewElement("menu", args...) }

// Scripting elements

func Script(args ...any) *Node   { return dom.NewElement("script", args...) }
func Noscript(args ...any) *Node { return dom.NewElement("noscript", args...) }
func Template(args ...any) *Node { return dom.NewElement("template", args...) }
func Slot(args ...any) *Node     { return dom.NewElement("slot", args...) }
func Style(args ...any) *Node    { return dom.NewElement("style", args...) }

// CustomElement creates an element with a custom tag name.
func CustomElement(tag string, args ...any) *Node {
	return dom.NewElement(tag, args...)
}
