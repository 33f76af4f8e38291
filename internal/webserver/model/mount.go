package model

import (
	"time"

	"github.com/svera/booktable/internal/graphql"
)

// Mount is a query started by a page render, kept around so the page can
// refresh its books panel until the query settles
type Mount struct {
	ID        string
	Query     *graphql.Query
	ExpiresAt time.Time
}
