package domain

import "fmt"

// Directive is a single (key, value) override request.
type Directive struct {
	Key   AttributeKey
	Value string
}

// String returns KEY="value".
func (d Directive) String() string {
	return fmt.Sprintf("%s=%q", d.Key, d.Value)
}

// DirectiveSet accumulates directives from several rules.
//
// Insertion order is preserved. A key holds the value of the first rule that
// queued it unless a later rule overwrites explicitly.
type DirectiveSet struct {
	order []AttributeKey
	value map[AttributeKey]string
}

// NewDirectiveSet returns an empty set.
func NewDirectiveSet() *DirectiveSet {
	return &DirectiveSet{value: make(map[AttributeKey]string)}
}

// Add queues key=value unless key is already queued. It reports whether the
// directive was added.
func (s *DirectiveSet) Add(key AttributeKey, value string) bool {
	if _, ok := s.value[key]; ok {
		return false
	}
	s.order = append(s.order, key)
	s.value[key] = value
	return true
}

// Overwrite queues key=value, replacing any earlier value but keeping the
// key's original position.
func (s *DirectiveSet) Overwrite(key AttributeKey, value string) {
	if _, ok := s.value[key]; !ok {
		s.order = append(s.order, key)
	}
	s.value[key] = value
}

// Len returns the number of queued directives.
func (s *DirectiveSet) Len() int {
	return len(s.order)
}

// Directives returns the queued directives in insertion order.
func (s *DirectiveSet) Directives() []Directive {
	out := make([]Directive, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, Directive{Key: k, Value: s.value[k]})
	}
	return out
}
