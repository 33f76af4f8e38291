package webserver

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/svera/booktable/internal/webserver/controller"
	"github.com/svera/booktable/internal/webserver/controller/books"
	"github.com/svera/booktable/internal/webserver/model"
)

type Controllers struct {
	Books        *books.Controller
	ErrorHandler func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, source books.Source, supportedLanguages []string, logger *zap.SugaredLogger) Controllers {
	mountsRepository := model.NewMountRepository(cfg.MountTTL)

	booksCfg := books.Config{
		FirstPaintWait: cfg.FirstPaintWait,
		PollWait:       cfg.PollWait,
	}

	return Controllers{
		Books: books.NewController(source, mountsRepository, booksCfg, logger),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			if code != fiber.StatusNotFound {
				logger.Errorw("request failed", "path", c.Path(), "status", code, "error", err)
			}

			template := "errors/500"
			if code == fiber.StatusNotFound {
				template = "errors/404"
			}

			lang, ok := c.Locals("Lang").(string)
			if !ok {
				lang = controller.BestLanguage(c, supportedLanguages)
			}

			// Send custom error page
			err = c.Status(code).Render(
				template,
				fiber.Map{
					"Lang":    lang,
					"Title":   fmt.Sprintf("%d", code),
					"Version": c.App().Config().AppName,
				},
				"layout")

			if err != nil {
				logger.Errorw("rendering error page", "error", err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
