package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/svera/booktable/internal/catalogue"
	"github.com/svera/booktable/internal/graphql"
	"github.com/svera/booktable/internal/i18n"
	"github.com/svera/booktable/internal/webserver"
)

func (s *ServeCmd) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	printers, err := i18n.Printers(i18n.Translations(), i18n.DefaultLanguage)
	if err != nil {
		return err
	}
	supportedLanguages := i18n.SupportedLanguages(printers, i18n.DefaultLanguage)

	var client graphql.Client = graphql.NewHTTPClient(s.Endpoint, s.RequestTimeout)
	if s.CacheTTL > 0 {
		cache, err := graphql.NewCache(client, s.CacheTTL)
		if err != nil {
			return err
		}
		defer cache.Close()
		client = cache
	}

	cfg := webserver.Config{
		Version:        version,
		FirstPaintWait: s.FirstPaintWait,
		PollWait:       s.PollWait,
		MountTTL:       s.MountTTL,
	}
	controllers := webserver.SetupControllers(cfg, catalogue.NewSource(client), supportedLanguages, logger)
	app, err := webserver.New(cfg, controllers, printers, supportedLanguages, logger)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			logger.Errorw("shutting down webserver", "error", err)
		}
	}()

	logger.Infow("booktable started", "version", version, "port", s.Port, "endpoint", s.Endpoint)
	return app.Listen(fmt.Sprintf(":%d", s.Port))
}
