package layout

import "strings"

const defaultFallbackTag = "div"

var defaultTags = []string{
	"div", "span", "p", "h1", "h2", "h3", "h4", "h5", "h6",
	"input", "textarea", "button", "img", "a",
	"table", "thead", "tbody", "tr", "td", "th",
	"ul", "ol", "li", "select", "option",
	"section", "article", "header", "footer", "nav", "aside",
}

// TagMap maps tags of the tree to tags of the rendered markup. Tags which are not in the map are rendered
// with the fallback tag. TagMap is immutable, methods returning a modified map make a copy.
type TagMap struct {
	tags     map[string]string
	fallback string
}

// DefaultTagMap maps common HTML tags to themselves and everything else to "div".
func DefaultTagMap() TagMap {
	tags := make(map[string]string, len(defaultTags))
	for _, tag := range defaultTags {
		tags[tag] = tag
	}

	return TagMap{tags: tags, fallback: defaultFallbackTag}
}

// NewTagMap creates map from tag names to rendered tags. Empty fallback means "div".
func NewTagMap(tags map[string]string, fallback string) TagMap {
	m := TagMap{tags: make(map[string]string, len(tags)), fallback: fallback}
	for from, to := range tags {
		m.tags[strings.ToLower(from)] = to
	}

	return m
}

// With returns a copy of the map with the given mappings added or replaced.
func (m TagMap) With(tags map[string]string) TagMap {
	c := TagMap{tags: make(map[string]string, len(m.tags)+len(tags)), fallback: m.fallback}
	for from, to := range m.tags {
		c.tags[from] = to
	}

	for from, to := range tags {
		c.tags[strings.ToLower(from)] = to
	}

	return c
}

// WithFallback returns a copy of the map with a different fallback tag.
func (m TagMap) WithFallback(fallback string) TagMap {
	c := m.With(nil)
	c.fallback = fallback
	return c
}

func (m TagMap) Known(tag string) bool {
	_, ok := m.tags[strings.ToLower(tag)]
	return ok
}

func (m TagMap) Lookup(tag string) string {
	if to, ok := m.tags[strings.ToLower(tag)]; ok {
		return to
	}

	if m.fallback == "" {
		return defaultFallbackTag
	}

	return m.fallback
}
