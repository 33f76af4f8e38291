package main

import (
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/svera/booktable/internal/catalogue"
	"github.com/svera/booktable/internal/graphql"
	"github.com/svera/booktable/internal/i18n"
	"github.com/svera/booktable/internal/webserver/view"
)

func (l *ListCmd) Run(ctx context.Context, logger *zap.SugaredLogger) error {
	printers, err := i18n.Printers(i18n.Translations(), i18n.DefaultLanguage)
	if err != nil {
		return err
	}
	printer, ok := printers[l.Lang]
	if !ok {
		return errors.Errorf("unsupported language '%s'", l.Lang)
	}

	source := catalogue.NewSource(graphql.NewHTTPClient(l.Endpoint, l.RequestTimeout))
	state := source.Watch(ctx).Wait(ctx)
	logger.Debugw("books query settled", "state", fmt.Sprintf("%T", state))

	return renderPanel(os.Stdout, view.Books(state), printer)
}

// renderPanel prints the books table to w. Panels without books are reported as errors.
func renderPanel(w io.Writer, panel view.Panel, printer *message.Printer) error {
	t := func(key string) string {
		return html.UnescapeString(printer.Sprintf(key))
	}

	switch panel.Kind {
	case view.PanelLoading:
		return errors.New(t("Loading..."))
	case view.PanelError:
		return errors.Errorf("%s: %s", t("Error"), panel.Message)
	case view.PanelInvalid:
		return errors.Errorf("%s: %s", t("Error"), t("Invalid data format"))
	}

	if len(panel.Books) == 0 {
		_, err := fmt.Fprintln(w, t("No books found"))
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header(t("Book title"), t("Author"), t("Price (yen)"))
	for _, b := range panel.Books {
		if err := table.Append([]string{b.Title, b.Author, strconv.FormatInt(b.Price, 10)}); err != nil {
			return err
		}
	}
	return table.Render()
}
