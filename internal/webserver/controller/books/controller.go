package books

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/svera/booktable/internal/graphql"
	"github.com/svera/booktable/internal/webserver/model"
)

// Source starts the books query
type Source interface {
	Watch(ctx context.Context) *graphql.Query
}

type mountsRepository interface {
	Start(watch func(ctx context.Context) *graphql.Query) *model.Mount
	Get(ID string) (*model.Mount, bool)
	Remove(ID string)
}

type Config struct {
	FirstPaintWait time.Duration
	PollWait       time.Duration
}

type Controller struct {
	source           Source
	mountsRepository mountsRepository
	config           Config
	logger           *zap.SugaredLogger
}

func NewController(source Source, mountsRepository mountsRepository, cfg Config, logger *zap.SugaredLogger) *Controller {
	return &Controller{
		source:           source,
		mountsRepository: mountsRepository,
		config:           cfg,
		logger:           logger,
	}
}
