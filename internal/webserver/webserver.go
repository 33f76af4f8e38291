package webserver

import (
	"embed"
	"io/fs"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/svera/booktable/internal/webserver/infrastructure"
)

var (
	//go:embed embedded
	embedded embed.FS

	cssFS   fs.FS
	jsFS    fs.FS
	viewsFS fs.FS
)

type Config struct {
	Version string
	// FirstPaintWait is how long a page waits for the books query before rendering a loading panel
	FirstPaintWait time.Duration
	// PollWait is how long a panel refresh waits for a pending query to settle
	PollWait time.Duration
	// MountTTL is how long a pending query stays addressable for refreshes
	MountTTL time.Duration
}

func init() {
	var err error
	if cssFS, err = fs.Sub(embedded, "embedded/css"); err != nil {
		panic(err)
	}
	if jsFS, err = fs.Sub(embedded, "embedded/js"); err != nil {
		panic(err)
	}
	if viewsFS, err = fs.Sub(embedded, "embedded/views"); err != nil {
		panic(err)
	}
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers, printers map[string]*message.Printer, supportedLanguages []string, logger *zap.SugaredLogger) (*fiber.App, error) {
	engine, err := infrastructure.TemplateEngine(viewsFS, printers)
	if err != nil {
		return nil, errors.Wrap(err, "creating template engine")
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		ErrorHandler:          controllers.ErrorHandler,
		AppName:               cfg.Version,
		PassLocalsToViews:     true,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(logger))

	routes(app, controllers, supportedLanguages)
	return app, nil
}
