package bff

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:embed graphiql.html
var graphiql []byte

// New returns a Fiber application serving the books of catalogue through GraphQL.
// Queries are accepted as POST requests on / and /graphql, and GET / serves GraphiQL.
//
// Queries run with the context of the underlying fasthttp request, which is only
// usable once the app serves a listener.
func New(catalogue Catalogue, logger *zap.SugaredLogger) (*fiber.App, error) {
	parsedSchema, err := graphqlgo.ParseSchema(schema, &Resolver{catalogue: catalogue}, graphqlgo.MaxDepth(5))
	if err != nil {
		return nil, errors.Wrap(err, "parsing GraphQL schema")
	}

	app := fiber.New(fiber.Config{
		AppName:               "booktable BFF",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	handler := adaptor.HTTPHandler(&relay.Handler{Schema: parsedSchema})
	query := func(c *fiber.Ctx) error {
		logger.Debugw("graphql request", "path", c.Path(), "body", string(c.Body()))
		return handler(c)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(graphiql)
	})
	app.Post("/", query)
	app.Post("/graphql", query)

	return app, nil
}
