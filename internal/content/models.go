// Package content fetches the page's content collections from the content service and
// publishes them as one snapshot.
package content

// Media is an uploaded file reference. URL is relative to the service base URL.
type Media struct {
	URL             string `json:"url"`
	AlternativeText string `json:"alternativeText"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

// AboutEntry is a titled block of about-us text.
type AboutEntry struct {
	ID    int    `json:"id"`
	Title string `json:"Nazev"`
	Body  string `json:"Obsah"`
}

// EventEntry is an upcoming public event.
type EventEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"Nazev"`
	Date        string `json:"Datum"`
	Place       string `json:"Misto"`
	Description string `json:"Popis"`
}

// FaqEntry is one question of the FAQ accordion.
type FaqEntry struct {
	ID       int    `json:"id"`
	Question string `json:"Otazka"`
	Answer   string `json:"Odpoved"`
}

// GalleryImage is one picture of the gallery grid.
type GalleryImage struct {
	ID      int    `json:"id"`
	Image   Media  `json:"Obrazek"`
	Caption string `json:"Popis"`
}

// ShowDetail is the content of one performances tab.
type ShowDetail struct {
	ID          int    `json:"id"`
	Title       string `json:"Titulek"`
	Description string `json:"Popis"`
	Image       Media  `json:"Obrazek"`
}

// ShowSummary is a short card under the about text. Icon names an icon glyph.
type ShowSummary struct {
	ID          int    `json:"id"`
	Icon        string `json:"Ikona"`
	Title       string `json:"Titulek"`
	Description string `json:"Popis"`
}

// HeroPerformer is a performer bio.
type HeroPerformer struct {
	ID          int    `json:"id"`
	Name        string `json:"Jmeno"`
	Description string `json:"Popis"`
	Role        string `json:"Role"`
	Image       Media  `json:"Obrazek"`
}

// Snapshot is the complete set of collections as of one successful load cycle.
// Collections are replaced wholesale, never merged.
type Snapshot struct {
	About      []AboutEntry
	Events     []EventEntry
	Faqs       []FaqEntry
	Gallery    []GalleryImage
	Shows      []ShowDetail
	Summaries  []ShowSummary
	Performers []HeroPerformer
}

// Empty reports whether every collection is empty.
func (s Snapshot) Empty() bool {
	return len(s.About) == 0 && len(s.Events) == 0 && len(s.Faqs) == 0 &&
		len(s.Gallery) == 0 && len(s.Shows) == 0 && len(s.Summaries) == 0 &&
		len(s.Performers) == 0
}

// Show returns the show detail with the given id.
func (s Snapshot) Show(id int) (ShowDetail, bool) {
	for _, sh := range s.Shows {
		if sh.ID == id {
			return sh, true
		}
	}
	return ShowDetail{}, false
}

// ContactForm is the body of a contact-form submission.
type ContactForm struct {
	Name    string `json:"Jmeno"`
	Email   string `json:"Email"`
	Message string `json:"Zprava"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}
