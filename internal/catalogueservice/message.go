package catalogueservice

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/svera/booktable/internal/book"
)

func encodeBook(b book.Book) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"id":     structpb.NewNumberValue(float64(b.ID)),
		"title":  structpb.NewStringValue(b.Title),
		"author": structpb.NewStringValue(b.Author),
		"price":  structpb.NewNumberValue(float64(b.Price)),
	}}
}

func encodeBooks(books []book.Book) *structpb.ListValue {
	values := make([]*structpb.Value, len(books))
	for i := range books {
		values[i] = structpb.NewStructValue(encodeBook(books[i]))
	}
	return &structpb.ListValue{Values: values}
}

// decodeBook and decodeBooks go through book.Parse, as any other payload received from the network
func decodeBook(s *structpb.Struct) (book.Book, error) {
	books, err := book.Parse([]any{s.AsMap()})
	if err != nil {
		return book.Book{}, err
	}
	return books[0], nil
}

func decodeBooks(l *structpb.ListValue) ([]book.Book, error) {
	return book.Parse(l.AsSlice())
}
