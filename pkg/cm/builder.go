package cm

// Builder constructs components rendering a fixed tag. Logic returns a new builder, so a builder
// can be shared and specialised freely.
type Builder struct {
	tag   Tag
	logic []LogicHandler
}

// New returns a builder for an intrinsic element.
func New(element string) Builder {
	return Builder{tag: Element(element)}
}

// For returns a builder for an arbitrary tag.
func For(tag Tag) Builder {
	return Builder{tag: tag}
}

// Logic appends a handler run before every render of the components built next.
func (b Builder) Logic(h LogicHandler) Builder {
	return Builder{tag: b.tag, logic: appendLogic(b.logic, h)}
}

// Template builds a base component; see T for how parts are interpreted.
func (b Builder) Template(parts ...any) *Component {
	return NewBase(b.tag, T(parts...), b.logic...)
}

// Variants builds a variants component.
func (b Builder) Variants(cfg VariantsConfig) *Component {
	return NewVariants(b.tag, cfg, b.logic...)
}

// ExtendBuilder constructs components layered on top of an existing one.
type ExtendBuilder struct {
	base  *Component
	logic []LogicHandler
}

// Extend starts a new layer on top of base.
func Extend(base *Component) ExtendBuilder {
	return ExtendBuilder{base: base}
}

// Logic appends a handler that runs after every inherited handler.
func (b ExtendBuilder) Logic(h LogicHandler) ExtendBuilder {
	return ExtendBuilder{base: b.base, logic: appendLogic(b.logic, h)}
}

// Template builds an extended component.
func (b ExtendBuilder) Template(parts ...any) *Component {
	return NewExtended(b.base, T(parts...), b.logic...)
}

// Variants builds an extended variants component.
func (b ExtendBuilder) Variants(cfg VariantsConfig) *Component {
	return NewExtendedVariants(b.base, cfg, b.logic...)
}

func appendLogic(existing []LogicHandler, h LogicHandler) []LogicHandler {
	out := make([]LogicHandler, 0, len(existing)+1)
	out = append(out, existing...)
	return append(out, h)
}

// Shorthands for the most common elements.
func A() Builder       { return New("a") }
func Article() Builder { return New("article") }
func Aside() Builder   { return New("aside") }
func Button() Builder  { return New("button") }
func Div() Builder     { return New("div") }
func Footer() Builder  { return New("footer") }
func Form() Builder    { return New("form") }
func H1() Builder      { return New("h1") }
func H2() Builder      { return New("h2") }
func Header() Builder  { return New("header") }
func Img() Builder     { return New("img") }
func Input() Builder   { return New("input") }
func Label() Builder   { return New("label") }
func Li() Builder      { return New("li") }
func Nav() Builder     { return New("nav") }
func P() Builder       { return New("p") }
func Section() Builder { return New("section") }
func Span() Builder    { return New("span") }
func Ul() Builder      { return New("ul") }
