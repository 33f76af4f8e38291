package book

import "context"

// Shelf is a read only, in memory list of books
type Shelf []Book

// Sample is the list of books served when no other source is configured
var Sample = Shelf{
	{ID: 1, Title: "The Awakening", Author: "Kate Chopin", Price: 1000},
	{ID: 2, Title: "City of Glass", Author: "Paul Auster", Price: 2000},
}

// Book returns the book identified by id, if any
func (s Shelf) Book(_ context.Context, id int64) (Book, bool, error) {
	for i := range s {
		if s[i].ID == id {
			return s[i], true, nil
		}
	}
	return Book{}, false, nil
}

// Books returns a copy of all the books in the shelf
func (s Shelf) Books(_ context.Context) ([]Book, error) {
	books := make([]Book, len(s))
	copy(books, s)
	return books, nil
}
