package scoring

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

var stopWords = map[string]struct{}{
	"and": {}, "the": {}, "for": {}, "with": {}, "you": {}, "our": {}, "are": {}, "will": {},
	"from": {}, "this": {}, "that": {}, "have": {}, "your": {}, "who": {}, "all": {}, "can": {},
	"into": {}, "about": {}, "their": {}, "they": {}, "has": {}, "was": {}, "were": {}, "not": {},
	"but": {}, "its": {}, "job": {}, "work": {}, "team": {}, "role": {}, "years": {}, "year": {},
	"experience": {}, "using": {}, "what": {}, "more": {}, "also": {}, "such": {}, "other": {},
}

// plainText drops markup from job descriptions. Plain text passes through unchanged.
func plainText(content string) string {
	if !strings.ContainsAny(content, "<&") {
		return content
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}
	doc.Find("script, style").Remove()
	doc.Find("br, p, li, div, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml(" ")
	})
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// keywords returns unique lowercase tokens of at least three characters, stop words removed.
func keywords(texts ...string) []string {
	var tokens []string
	for _, text := range texts {
		tokens = append(tokens, strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
		})...)
	}
	return lo.Uniq(lo.Filter(tokens, func(token string, _ int) bool {
		if len(token) < 3 {
			return false
		}
		_, stop := stopWords[token]
		return !stop
	}))
}

func tokenSet(tokens []string) map[string]struct{} {
	return lo.SliceToMap(tokens, func(token string) (string, struct{}) { return token, struct{}{} })
}

func overlap(tokens []string, set map[string]struct{}) []string {
	return lo.Filter(tokens, func(token string, _ int) bool {
		_, ok := set[token]
		return ok
	})
}

// truncate cuts s to at most limit bytes without splitting a multi-byte character.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
