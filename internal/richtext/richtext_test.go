package richtext

import "testing"

func TestPlain(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "   ", ""},
		{"plain", "Jsme skupina.", "Jsme skupina."},
		{"emphasis", "Jsme **ohňová** skupina.", "Jsme ohňová skupina."},
		{"paragraphs", "První.\n\nDruhý\nřádek.", "První.\n\nDruhý řádek."},
		{"inline html", "Ahoj <script>alert(1)</script><b>světe</b>", "Ahoj světe"},
		{"entities", "Tom &amp; Jerry", "Tom & Jerry"},
		{"link", "[web](https://www.aurenox.cz)", "web"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Plain(tc.in); got != tc.want {
				t.Fatalf("Plain(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
