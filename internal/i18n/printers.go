package i18n

import (
	"embed"
	"io/fs"
	"sort"

	"golang.org/x/text/message"
)

// DefaultLanguage is used when the client doesn't state a supported language
const DefaultLanguage = "ja"

//go:embed translations
var translations embed.FS

// Translations returns the translation files bundled with the application
func Translations() fs.FS {
	dir, err := fs.Sub(translations, "translations")
	if err != nil {
		panic(err)
	}
	return dir
}

// Printers returns a printer for each language found in dir, indexed by its base language code
func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	printers := make(map[string]*message.Printer, len(cat.Languages()))
	for _, tag := range cat.Languages() {
		base, _ := tag.Base()
		printers[base.String()] = message.NewPrinter(tag, message.Catalog(cat))
	}
	return printers, nil
}

// SupportedLanguages returns the base language codes found in printers, with fallbackLang first
func SupportedLanguages(printers map[string]*message.Printer, fallbackLang string) []string {
	others := make([]string, 0, len(printers))
	for lang := range printers {
		if lang != fallbackLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	if _, ok := printers[fallbackLang]; ok {
		return append([]string{fallbackLang}, others...)
	}
	return others
}
