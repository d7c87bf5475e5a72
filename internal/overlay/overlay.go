// Package overlay holds the open/closed state of the page's modals and accordion.
// Each overlay is independent: opening one never closes another.
package overlay

// Accordion is a single-slot accordion: at most one entry is open.
type Accordion struct {
	open  int
	isSet bool
}

// Toggle closes index if it is the open entry, otherwise opens it and closes any other.
func (a *Accordion) Toggle(index int) {
	if a.isSet && a.open == index {
		a.isSet = false
		return
	}
	a.open = index
	a.isSet = true
}

// Open returns the open index, if any.
func (a *Accordion) Open() (int, bool) { return a.open, a.isSet }

// IsOpen reports whether index is the open entry.
func (a *Accordion) IsOpen(index int) bool { return a.isSet && a.open == index }

// Collapse closes the open entry.
func (a *Accordion) Collapse() { a.isSet = false }

// Modal is a closed/open state carrying the selected record verbatim.
type Modal[T any] struct {
	selected T
	open     bool
}

// Open shows v, replacing any current selection.
func (m *Modal[T]) Open(v T) {
	m.selected = v
	m.open = true
}

// Close hides the modal and drops the selection.
func (m *Modal[T]) Close() {
	var zero T
	m.selected = zero
	m.open = false
}

// Selected returns the shown record, if open.
func (m *Modal[T]) Selected() (T, bool) { return m.selected, m.open }

// IsOpen reports whether the modal is shown.
func (m *Modal[T]) IsOpen() bool { return m.open }

// Image is the image modal's selection: a resolved display URL and optional caption.
type Image struct {
	URL     string
	Caption string
}

// ImageModal shows a single image.
type ImageModal struct {
	Modal[Image]
}

// Show opens url with caption. url must already be joined with the base URL.
func (m *ImageModal) Show(url, caption string) {
	m.Open(Image{URL: url, Caption: caption})
}
