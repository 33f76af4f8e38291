package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Root redirects to the home page in the language that best matches the client preferences
func Root(c *fiber.Ctx, supportedLanguages []string) error {
	return c.Redirect(fmt.Sprintf("/%s", BestLanguage(c, supportedLanguages)))
}

// BestLanguage picks one of supportedLanguages from the Accept-Language header.
// The first supported language is used when nothing matches.
func BestLanguage(c *fiber.Ctx, supportedLanguages []string) string {
	acceptHeader := c.Get(fiber.HeaderAcceptLanguage)
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}
	languageMatcher := language.NewMatcher(tags)

	t, _, _ := language.ParseAcceptLanguage(acceptHeader)
	tag, _, _ := languageMatcher.Match(t...)
	baseLang, _ := tag.Base()
	return baseLang.String()
}
