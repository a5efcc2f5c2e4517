package layout

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Precedence decides what happens when extra attributes of an element use the names of the
// attributes computed by the builder ("id" and "style").
type Precedence int

const (
	// ExtraWins lets extra attributes overwrite computed ones.
	ExtraWins Precedence = iota
	// ReservedWins ignores extra attributes named "id" or "style".
	ReservedWins
)

type Option func(*Builder)

func WithPrecedence(p Precedence) Option {
	return func(b *Builder) {
		b.precedence = p
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Builder turns placed elements into layout trees, one root node per element. Builder holds no state
// besides its options and can be used concurrently.
type Builder struct {
	precedence Precedence
	log        *zap.Logger
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Result is the outcome of building one element. Degraded results are elements whose markup could not be
// parsed and was kept as a single text child instead, Cause explains why.
type Result struct {
	Node     *Node
	Degraded bool
	Cause    error
}

// BuildTree builds trees for elements with default options.
func BuildTree(elements []PlacedElement) []*Node {
	return NewBuilder().BuildTree(elements)
}

// BuildTree returns root node for every element, in the same order.
func (b *Builder) BuildTree(elements []PlacedElement) []*Node {
	results := b.Build(elements)

	nodes := make([]*Node, 0, len(results))
	for _, result := range results {
		nodes = append(nodes, result.Node)
	}

	return nodes
}

// Build returns result for every element, in the same order. Failure to parse one element never
// affects the others.
func (b *Builder) Build(elements []PlacedElement) []Result {
	results := make([]Result, 0, len(elements))
	for _, element := range elements {
		result := b.build(element)
		if result.Degraded {
			b.log.Warn("element markup degraded to text", zap.String("id", element.ID), zap.Error(result.Cause))
		}

		results = append(results, result)
	}

	return results
}

func (b *Builder) build(e PlacedElement) Result {
	kind := strings.ToLower(e.Kind)

	node := &Node{
		Kind:       ElementKind,
		Tag:        fallback(kind, "div"),
		Attributes: b.attributes(e),
	}

	markup := strings.TrimSpace(e.Markup)
	raw := markup

	// table elements may contain only rows and cells
	if kind == "table" && !hasPrefixFold(raw, "<table") {
		raw = "<table>" + raw + "</table>"
	}

	if !strings.Contains(raw, "<") || !strings.Contains(raw, ">") {
		node.Children = plainText(raw)
		return Result{Node: node}
	}

	children, err := parse(raw)
	if err != nil {
		node.Children = plainText(markup)
		return Result{Node: node, Degraded: true, Cause: fmt.Errorf("element %q: %w", e.ID, err)}
	}

	if len(children) > 0 {
		node.Children = children
	}

	return Result{Node: node}
}

// parse runs the parser and reports its panics as errors
func parse(markup string) (nodes []*Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			nodes, err = nil, fmt.Errorf("parser panic: %v", r)
		}
	}()

	return Parse(markup)
}

func (b *Builder) attributes(e PlacedElement) Attributes {
	style := Style{{Name: "position", Value: fallback(e.Position, "absolute")}}

	if e.X != "" {
		style.Set("left", pixels(e.X))
	}

	if e.Y != "" {
		style.Set("top", pixels(e.Y))
	}

	if e.Width != "" {
		style.Set("width", e.Width)
	}

	if e.Height != "" {
		style.Set("height", e.Height)
	}

	for _, k := range sortedKeys(e.StyleOverrides) {
		style.Set(k, e.StyleOverrides[k])
	}

	attrs := Attributes{}
	attrs.Set("id", e.ID)
	attrs.SetStyle("style", style)

	for _, k := range sortedKeys(e.ExtraAttributes) {
		if b.precedence == ReservedWins && (k == "id" || k == "style") {
			continue
		}

		switch v := e.ExtraAttributes[k].(type) {
		case map[string]any:
			s := Style{}
			for _, name := range sortedKeys(v) {
				s.Set(name, stringify(v[name]))
			}

			attrs.SetStyle(k, s)
		case map[string]string:
			s := Style{}
			for _, name := range sortedKeys(v) {
				s.Set(name, v[name])
			}

			attrs.SetStyle(k, s)
		default:
			attrs.Set(k, stringify(v))
		}
	}

	return attrs
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}
