package graphql_test

import (
	"testing"

	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/stretchr/testify/require"

	"github.com/svera/booktable/internal/graphql"
)

func TestParse(t *testing.T) {
	op, err := graphql.Parse(`query ListBooks { books { id title } }`)
	require.NoError(t, err)
	require.Equal(t, "ListBooks", op.Name)
	require.Equal(t, ast.Query, op.Kind)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	var cases = []struct {
		name  string
		query string
	}{
		{"Syntax error", `query ListBooks { books { id `},
		{"Anonymous operation", `{ books { id } }`},
		{"Several operations", `query A { books { id } } query B { books { id } }`},
		{"Fragment only", `fragment F on Book { id }`},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			_, err := graphql.Parse(tcase.query)
			require.Error(t, err)
		})
	}
}

func TestMustParsePanicsOnInvalidDocuments(t *testing.T) {
	require.Panics(t, func() {
		graphql.MustParse(`{ books }`)
	})
}
