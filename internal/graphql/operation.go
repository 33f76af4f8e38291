package graphql

import (
	"github.com/dgraph-io/gqlparser/v2/ast"
	"github.com/dgraph-io/gqlparser/v2/parser"
	"github.com/pkg/errors"
)

// Operation is a GraphQL document holding a single named operation
type Operation struct {
	Name  string
	Query string
	Kind  ast.Operation
}

// Parse validates the syntax of query and extracts its operation
func Parse(query string) (Operation, error) {
	doc, gqlErr := parser.ParseQuery(&ast.Source{Input: query})
	if gqlErr != nil {
		return Operation{}, errors.Wrap(gqlErr, "parsing GraphQL document")
	}
	if len(doc.Operations) != 1 {
		return Operation{}, errors.Errorf("document must hold exactly one operation, got %d", len(doc.Operations))
	}
	op := doc.Operations[0]
	if op.Name == "" {
		return Operation{}, errors.New("operation must be named")
	}
	return Operation{
		Name:  op.Name,
		Query: query,
		Kind:  op.Operation,
	}, nil
}

// MustParse is like Parse but panics if the document is not valid.
// It is meant for package level operations.
func MustParse(query string) Operation {
	op, err := Parse(query)
	if err != nil {
		panic(err)
	}
	return op
}
