package main

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/svera/booktable/internal/book"
	"github.com/svera/booktable/internal/catalogueservice"
)

func (c *CatalogueCmd) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	ln, err := net.Listen("tcp", c.Address)
	if err != nil {
		return errors.Wrapf(err, "listening on %s", c.Address)
	}

	server := catalogueservice.NewGRPCServer(book.Sample, logger)
	go func() {
		<-ctx.Done()
		server.GracefulStop()
	}()

	logger.Infow("catalogue service started", "address", ln.Addr().String())
	return server.Serve(ln)
}
