package books

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/svera/booktable/internal/graphql"
	"github.com/svera/booktable/internal/webserver/model"
	"github.com/svera/booktable/internal/webserver/view"
)

// Panel renders the books panel of a mounted page once its query settles,
// or the loading panel again if it didn't settle in time
func (b *Controller) Panel(c *fiber.Ctx) error {
	ID := c.Params("mount")
	mount, ok := b.mountsRepository.Get(ID)
	if !ok {
		return fiber.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), b.config.PollWait)
	defer cancel()
	state := mount.Query.Wait(ctx)

	return c.Render("partials/books", fiber.Map{
		"Panel":    view.Books(state),
		"MountURL": b.settle(c, mount, state),
	})
}

// settle returns the URL the page has to poll while state is still loading.
// Settled mounts are not needed anymore and are forgotten.
func (b *Controller) settle(c *fiber.Ctx, mount *model.Mount, state graphql.Result) string {
	if _, loading := state.(graphql.Loading); loading {
		return fmt.Sprintf("/%s/books/%s", c.Locals("Lang"), mount.ID)
	}
	b.mountsRepository.Remove(mount.ID)
	b.logState(state)
	return ""
}

func (b *Controller) logState(state graphql.Result) {
	if failed, ok := state.(graphql.Failed); ok {
		b.logger.Warnw("books query failed", "error", failed.Message)
	}
}
