package bff

import (
	"context"

	"github.com/svera/booktable/internal/book"
)

// Catalogue provides the books served through the schema
type Catalogue interface {
	Book(ctx context.Context, id int64) (book.Book, bool, error)
	Books(ctx context.Context) ([]book.Book, error)
}

// Resolver is the root resolver of the schema
type Resolver struct {
	catalogue Catalogue
}

func (r *Resolver) Book(ctx context.Context, args struct{ ID int32 }) (*bookResolver, error) {
	b, ok, err := r.catalogue.Book(ctx, int64(args.ID))
	if err != nil || !ok {
		return nil, err
	}
	return &bookResolver{b}, nil
}

func (r *Resolver) Books(ctx context.Context) ([]*bookResolver, error) {
	books, err := r.catalogue.Books(ctx)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*bookResolver, len(books))
	for i := range books {
		resolvers[i] = &bookResolver{books[i]}
	}
	return resolvers, nil
}

type bookResolver struct {
	b book.Book
}

func (r *bookResolver) ID() int32 {
	return int32(r.b.ID)
}

func (r *bookResolver) Title() string {
	return r.b.Title
}

func (r *bookResolver) Author() string {
	return r.b.Author
}

func (r *bookResolver) Price() int32 {
	return int32(r.b.Price)
}
