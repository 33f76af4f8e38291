package books

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/svera/booktable/internal/webserver/view"
)

// Index renders the books page. It gives the query a short time to settle so
// that fast endpoints render the table right away, and falls back to a loading
// panel which refreshes itself through Panel otherwise.
func (b *Controller) Index(c *fiber.Ctx) error {
	mount := b.mountsRepository.Start(b.source.Watch)

	ctx, cancel := context.WithTimeout(c.UserContext(), b.config.FirstPaintWait)
	defer cancel()
	state := mount.Query.Wait(ctx)

	return c.Render("index", fiber.Map{
		"Title":    "Books",
		"Panel":    view.Books(state),
		"MountURL": b.settle(c, mount, state),
	}, "layout")
}
