package view

import (
	"github.com/svera/booktable/internal/book"
	"github.com/svera/booktable/internal/graphql"
)

type PanelKind int

const (
	PanelLoading PanelKind = iota
	PanelError
	PanelInvalid
	PanelTable
)

// Panel is what the books region of a page shows for a given query state
type Panel struct {
	Kind PanelKind
	// Message is the transport error, only set for PanelError
	Message string
	// Books holds validated rows in payload order, only set for PanelTable
	Books []book.Book
}

// Books selects the panel to show for state. Loading wins over everything else,
// then failures, and fetched payloads are only shown as a table if they have the shape of a list of books.
func Books(state graphql.Result) Panel {
	switch s := state.(type) {
	case graphql.Loading:
		return Panel{Kind: PanelLoading}
	case graphql.Failed:
		return Panel{Kind: PanelError, Message: s.Message}
	case graphql.Fetched:
		books, err := book.Parse(s.Data)
		if err != nil {
			return Panel{Kind: PanelInvalid}
		}
		return Panel{Kind: PanelTable, Books: books}
	}
	return Panel{Kind: PanelLoading}
}

func (p Panel) IsLoading() bool {
	return p.Kind == PanelLoading
}

func (p Panel) IsError() bool {
	return p.Kind == PanelError
}

func (p Panel) IsInvalid() bool {
	return p.Kind == PanelInvalid
}

func (p Panel) IsTable() bool {
	return p.Kind == PanelTable
}
