package catalogue

import (
	"context"

	"github.com/svera/booktable/internal/graphql"
)

// ListBooks retrieves the whole catalogue
var ListBooks = graphql.MustParse(`
  query ListBooks {
    books {
      id
      title
      author
      price
    }
  }
`)

// Source queries the catalogue through a GraphQL client
type Source struct {
	client graphql.Client
}

func NewSource(client graphql.Client) *Source {
	return &Source{client: client}
}

// Watch starts ListBooks in the background. Once fetched, the payload of the
// query is the books member of the response data, still unvalidated.
func (s *Source) Watch(ctx context.Context) *graphql.Query {
	return graphql.WatchFunc(ctx, func(ctx context.Context) (any, error) {
		data, err := s.client.Execute(ctx, ListBooks, nil)
		if err != nil {
			return nil, err
		}
		return member(data, "books"), nil
	})
}

func member(data any, key string) any {
	if fields, ok := data.(map[string]any); ok {
		return fields[key]
	}
	return nil
}
