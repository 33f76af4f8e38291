package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/svera/booktable/internal/bff"
	"github.com/svera/booktable/internal/book"
	"github.com/svera/booktable/internal/catalogueservice"
)

func (b *BFFCmd) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	var catalogue bff.Catalogue = book.Sample
	if b.Catalogue != "" {
		conn, err := catalogueservice.Dial(b.Catalogue)
		if err != nil {
			return err
		}
		defer conn.Close()
		catalogue = catalogueservice.NewClient(conn)
		logger.Infow("using gRPC catalogue service", "address", b.Catalogue)
	}

	app, err := bff.New(catalogue, logger)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Errorw("shutting down GraphQL server", "error", err)
		}
	}()

	logger.Infow("GraphiQL IDE available", "url", "http://"+b.Address)
	return app.Listen(b.Address)
}
