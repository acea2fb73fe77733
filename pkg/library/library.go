// Package library is the mock book catalog behind the library and reader
// views.
package library

// Book is one catalog entry. Progress is a percentage.
type Book struct {
	ID         string
	Title      string
	Author     string
	CoverColor string
	Progress   int
}

var catalog = []Book{
	{ID: "1", Title: "The Three-Body Problem", Author: "Cixin Liu", CoverColor: "#2563eb", Progress: 65},
	{ID: "2", Title: "Dune", Author: "Frank Herbert", CoverColor: "#ea580c", Progress: 20},
	{ID: "3", Title: "Neuromancer", Author: "William Gibson", CoverColor: "#9333ea", Progress: 0},
	{ID: "4", Title: "Snow Crash", Author: "Neal Stephenson", CoverColor: "#475569", Progress: 90},
	{ID: "5", Title: "Foundation", Author: "Isaac Asimov", CoverColor: "#4f46e5", Progress: 45},
	{ID: "6", Title: "Hyperion", Author: "Dan Simmons", CoverColor: "#059669", Progress: 10},
}

// Catalog returns a copy of the catalog in shelf order.
func Catalog() []Book {
	out := make([]Book, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the book with id.
func Find(id string) (Book, bool) {
	for _, b := range catalog {
		if b.ID == id {
			return b, true
		}
	}
	return Book{}, false
}

var placeholder = []string{
	"This is placeholder text for a book without mock content in this build.",
	"The orbital reader keeps navigation out of the way so the page stays in focus.",
	"Text reflows with the terminal size; resize the window and the column follows.",
	"Hover an edge to call the orb back, or press o to bring it to the center.",
}

// Excerpt returns the mock paragraphs shown for a book.
func Excerpt(b Book) []string {
	out := make([]string, 0, len(placeholder)+1)
	out = append(out, b.Title+" by "+b.Author+".")
	return append(out, placeholder...)
}
