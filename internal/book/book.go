package book

import "github.com/pkg/errors"

// ErrInvalidFormat is returned when a payload does not have the shape of a list of books
var ErrInvalidFormat = errors.New("invalid data format")

// Book is a catalogue entry as served by the GraphQL endpoint
type Book struct {
	ID     int64
	Title  string
	Author string
	Price  int64
}

// Parse converts an untyped payload into books, keeping the order in which they were received.
// Payloads that don't pass IsBookArray are rejected with ErrInvalidFormat.
func Parse(payload any) ([]Book, error) {
	if !IsBookArray(payload) {
		return nil, ErrInvalidFormat
	}

	elems := elements(payload)
	books := make([]Book, 0, len(elems))
	for _, elem := range elems {
		b, _ := toBook(elem)
		books = append(books, b)
	}
	return books, nil
}
