package mockserver

import "fmt"

var seedDocuments = []struct {
	name  string
	title string
	body  string
}{
	{"handbook.pdf", "Employee Handbook", "Office hours are 9 to 5. Remote work requires manager approval."},
	{"faq.pdf", "Frequently Asked Questions", "Chat memory is kept per user until it is cleared by an administrator."},
}

// Seed fills the data folder with a couple of generated PDFs and ingests
// the first one, so every listing has something to show.
func Seed(store *Store) error {
	for _, doc := range seedDocuments {
		content, err := SamplePDF(doc.title, doc.body)
		if err != nil {
			return fmt.Errorf("render %s: %w", doc.name, err)
		}
		store.PutPDF(doc.name, content)
	}
	store.Ingest(seedDocuments[0].name)
	store.AppendMemory("user_0", "Hello")
	return nil
}
