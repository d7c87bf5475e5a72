package contenttest

import "github.com/aurenox/aurenox/internal/content"

// Fixtures returns one small collection per content path.
func Fixtures() map[string]any {
	return map[string]any{
		content.PathAbout: []content.AboutEntry{
			{ID: 1, Title: "O nás", Body: "Jsme **ohňová** skupina z Vysočiny."},
		},
		content.PathEvents: []content.EventEntry{
			{ID: 1, Name: "Noc ohňů", Date: "2026-07-04", Place: "Třešť", Description: "Letní vystoupení."},
			{ID: 2, Name: "Světelná show", Date: "2026-09-12", Place: "Jihlava", Description: "LED a pyro."},
		},
		content.PathFaqs: []content.FaqEntry{
			{ID: 1, Question: "Kolik stojí vystoupení?", Answer: "Podle délky a místa."},
			{ID: 2, Question: "Jezdíte i mimo kraj?", Answer: "Ano, po celé republice."},
			{ID: 3, Question: "Je show bezpečná?", Answer: "Máme pojištění a praxi."},
		},
		content.PathGallery: []content.GalleryImage{
			{ID: 1, Image: content.Media{URL: "/uploads/g1.jpg"}, Caption: "Ohnivé vějíře"},
			{ID: 2, Image: content.Media{URL: "/uploads/g2.jpg"}},
		},
		content.PathShows: []content.ShowDetail{
			{ID: 7, Title: "Fireshow", Description: "Klasická ohňová show.", Image: content.Media{URL: "/uploads/fire.jpg"}},
			{ID: 9, Title: "LED show", Description: "Světelná show pro interiéry.", Image: content.Media{URL: "/uploads/led.jpg"}},
		},
		content.PathSummaries: []content.ShowSummary{
			{ID: 1, Icon: "Flame", Title: "Oheň", Description: "Poi, hůlky, vějíře."},
			{ID: 2, Icon: "Sparkles", Title: "Světlo", Description: "LED rekvizity."},
			{ID: 3, Icon: "NoSuchIcon", Title: "Pyro", Description: "Efekty na přání."},
		},
		content.PathPerformers: []content.HeroPerformer{
			{ID: 1, Name: "Zbyněk", Description: "Zakladatel.", Role: "Poi", Image: content.Media{URL: "/uploads/z.jpg"}},
			{ID: 2, Name: "Lucie", Description: "Choreografie.", Image: content.Media{URL: "/uploads/l.jpg"}},
		},
	}
}
