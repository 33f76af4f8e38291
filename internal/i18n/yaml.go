package i18n

import (
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

// dictionary holds the translations of a single language, keyed by their english text
type dictionary struct {
	entries map[string]string
}

// Lookup implements catalog.Dictionary. Values are returned as plain strings,
// which is what the \x02 prefix stands for in the catalog's internal encoding.
func (d *dictionary) Lookup(key string) (string, bool) {
	value, ok := d.entries[key]
	if !ok {
		return "", false
	}
	return "\x02" + value, true
}

// NewCatalogFromFolder compiles the <lang>.yml dictionaries found at the root of dir into a
// single catalog. Keys missing from a dictionary are looked up in fallbackLang.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, error) {
	fallback, err := language.Parse(fallbackLang)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing fallback language '%s'", fallbackLang)
	}

	names, err := fs.Glob(dir, "*.yml")
	if err != nil {
		return nil, errors.Wrap(err, "listing translation files")
	}

	dictionaries := make(map[string]catalog.Dictionary, len(names))
	for _, name := range names {
		raw, err := fs.ReadFile(dir, name)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", name)
		}
		dict, err := ParseYAMLDict(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s", name)
		}
		dictionaries[strings.TrimSuffix(name, path.Ext(name))] = dict
	}
	if _, ok := dictionaries[fallbackLang]; !ok {
		return nil, errors.Errorf("no dictionary for fallback language '%s'", fallbackLang)
	}

	return catalog.NewFromMap(dictionaries, catalog.Fallback(fallback))
}

// ParseYAMLDict reads a flat key: translation YAML document
func ParseYAMLDict(raw []byte) (catalog.Dictionary, error) {
	entries := map[string]string{}
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return &dictionary{entries: entries}, nil
}
