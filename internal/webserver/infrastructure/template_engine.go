package infrastructure

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	// Translations may contain markup, such as non breaking spaces, so they are not escaped.
	// Never pass untrusted values to t.
	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		printer, ok := printers[lang]
		if !ok {
			return template.HTML(template.HTMLEscapeString(fmt.Sprintf(key, values...)))
		}
		return template.HTML(printer.Sprintf(key, values...))
	})

	engine.AddFunc("uppercase", func(text string) string {
		return strings.ToUpper(text)
	})

	if err := engine.Load(); err != nil {
		return nil, err
	}
	return engine, nil
}
