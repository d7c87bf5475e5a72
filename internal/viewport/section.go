// Package viewport derives the active anchor section from scroll position.
package viewport

// Section identifies an anchor section of the page.
type Section string

const (
	Home         Section = "home"
	About        Section = "about"
	Performances Section = "performances"
	Gallery      Section = "gallery"
	Contact      Section = "contact"
	Hero         Section = "hero"
)

// Sections lists every anchor section in page order.
var Sections = []Section{Home, About, Performances, Hero, Gallery, Contact}

var labels = map[Section]string{
	Home:         "Úvod",
	About:        "O nás",
	Performances: "Vystoupení",
	Hero:         "Účinkující",
	Gallery:      "Galerie",
	Contact:      "Kontakt",
}

// Label returns the navigation label of s.
func (s Section) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the anchor sections.
func (s Section) Valid() bool {
	_, ok := labels[s]
	return ok
}

// Box is a section's vertical extent relative to the viewport top. Bottom is inclusive.
type Box struct {
	Top    int
	Bottom int
}

// Contains reports whether the horizontal line at y crosses the box.
func (b Box) Contains(y int) bool {
	return b.Top <= y && b.Bottom >= y
}

// Geometry reports the current box of a section; ok is false when it is not laid out.
type Geometry interface {
	Box(s Section) (Box, bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(s Section) (Box, bool)

func (f GeometryFunc) Box(s Section) (Box, bool) { return f(s) }
