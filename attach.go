package htmltools

// DependencyHolder is implemented by content objects that carry an ordered
// list of HTML dependencies. At render time the collected lists are handed
// to Render in input order.
type DependencyHolder interface {
	// HTMLDependencies returns the attached descriptor list.
	HTMLDependencies() []Dependency

	// SetHTMLDependencies replaces the attached descriptor list. Setting
	// replaces the whole list; there is no merge.
	SetHTMLDependencies(deps []Dependency)
}

// DependencySet is an embeddable DependencyHolder implementation for
// content object types that do not manage their own list.
type DependencySet struct {
	deps []Dependency
}

func (s *DependencySet) HTMLDependencies() []Dependency {
	return s.deps
}

func (s *DependencySet) SetHTMLDependencies(deps []Dependency) {
	s.deps = deps
}

// Dependencies returns the descriptor list attached to v, or nil when v
// does not carry dependencies.
func Dependencies(v any) []Dependency {
	if h, ok := v.(DependencyHolder); ok {
		return h.HTMLDependencies()
	}
	return nil
}

// SetDependencies replaces the descriptor list on v, reporting whether v
// can carry dependencies.
func SetDependencies(v any, deps []Dependency) bool {
	h, ok := v.(DependencyHolder)
	if ok {
		h.SetHTMLDependencies(deps)
	}
	return ok
}

// Compile-time interface check.
var _ DependencyHolder = (*DependencySet)(nil)
