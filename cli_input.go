package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/alecthomas/kong"
)

// CLIInput stores all commands, flags and arguments that can be passed to the application
type CLIInput struct {
	Version kong.VersionFlag `short:"v" name:"version" help:"Get version number."`
	// Debug switches logging to a human friendly, verbose format
	Debug bool `env:"DEBUG" default:"false" name:"debug" help:"Enable verbose, human friendly logging."`

	Serve     ServeCmd     `cmd:"" default:"1" help:"Run the web front-end (default)."`
	BFF       BFFCmd       `cmd:"" name:"bff" help:"Run the GraphQL backend-for-frontend serving the book catalogue."`
	Catalogue CatalogueCmd `cmd:"" help:"Run the gRPC catalogue service."`
	List      ListCmd      `cmd:"" help:"Query the GraphQL endpoint once and print the books as a table."`
}

// ServeCmd holds the configuration of the web front-end
type ServeCmd struct {
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" short:"p" default:"3000" name:"port" help:"Port number in which the webserver listens for requests."`
	// Endpoint is the address of the GraphQL server queried for books
	Endpoint string `env:"GRAPHQL_ENDPOINT" short:"e" default:"http://localhost:4000/graphql" name:"endpoint" help:"Address of the GraphQL server queried for books."`
	// RequestTimeout bounds every GraphQL request
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"10s" name:"request-timeout" help:"Maximum duration of a GraphQL request."`
	// CacheTTL defines how long GraphQL responses are reused. Set to 0 to disable the cache
	CacheTTL time.Duration `env:"CACHE_TTL" default:"30s" name:"cache-ttl" help:"How long GraphQL responses are reused. Set to 0 to disable the cache."`
	// FirstPaintWait is how long a page waits for the books query before showing a loading indicator
	FirstPaintWait time.Duration `env:"FIRST_PAINT_WAIT" default:"300ms" name:"first-paint-wait" help:"How long a page waits for the books query before showing a loading indicator."`
	// PollWait is how long a loading indicator refresh waits for the query to finish
	PollWait time.Duration `env:"POLL_WAIT" default:"20s" name:"poll-wait" help:"How long a loading indicator refresh waits for the query to finish."`
	// MountTTL is how long a pending query can be refreshed before being discarded
	MountTTL time.Duration `env:"MOUNT_TTL" default:"2m" name:"mount-ttl" help:"How long a pending query can be refreshed before being discarded."`
}

// BFFCmd holds the configuration of the GraphQL backend-for-frontend
type BFFCmd struct {
	Address string `env:"BFF_ADDRESS" short:"a" default:"127.0.0.1:4000" name:"address" help:"Address in which the GraphQL server listens for requests."`
	// Catalogue is the address of the gRPC catalogue service. Sample books are served when empty
	Catalogue string `env:"CATALOGUE_ADDRESS" short:"c" name:"catalogue" help:"Address of the gRPC catalogue service. Sample books are served if not set."`
}

// CatalogueCmd holds the configuration of the gRPC catalogue service
type CatalogueCmd struct {
	Address string `env:"CATALOGUE_ADDRESS" short:"a" default:"127.0.0.1:57631" name:"address" help:"Address in which the gRPC service listens for requests."`
}

// ListCmd holds the configuration of the list command
type ListCmd struct {
	Endpoint       string        `env:"GRAPHQL_ENDPOINT" short:"e" default:"http://localhost:4000/graphql" name:"endpoint" help:"Address of the GraphQL server queried for books."`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" default:"10s" name:"request-timeout" help:"Maximum duration of a GraphQL request."`
	Lang           string        `env:"LANG_CODE" short:"l" default:"ja" name:"lang" help:"Two letter code of the language used for column labels."`
}

// Validate is called by kong once flags are parsed
func (s *ServeCmd) Validate() error {
	return positiveDurations(map[string]time.Duration{
		"request-timeout":  s.RequestTimeout,
		"first-paint-wait": s.FirstPaintWait,
		"poll-wait":        s.PollWait,
		"mount-ttl":        s.MountTTL,
	})
}

// Validate is called by kong once flags are parsed
func (l *ListCmd) Validate() error {
	return positiveDurations(map[string]time.Duration{
		"request-timeout": l.RequestTimeout,
	})
}

func positiveDurations(durations map[string]time.Duration) error {
	names := make([]string, 0, len(durations))
	for name := range durations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if durations[name] <= 0 {
			return fmt.Errorf("--%s must be greater than zero, got %s", name, durations[name])
		}
	}
	return nil
}
