package seo

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Check is one heuristic with its outcome and weight.
type Check struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Passed bool   `json:"passed"`
	Weight int    `json:"weight"`
}

// Result is the itemized outcome of a scoring run. Score is the sum of the
// weights of the passed checks; weights per content type sum to 100.
type Result struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the input and strips diacritics so "lápiz" matches
// "lapiz". Used for matching only; stored text is never rewritten.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	out, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		return lowered
	}
	return out
}

// KeywordSlug converts a normalized keyword into its slug form by replacing
// whitespace runs with hyphens.
func KeywordSlug(keyword string) string {
	return strings.Join(strings.Fields(keyword), "-")
}

// ProductInput carries the fields the product scorer inspects.
type ProductInput struct {
	FocusKeyword    string
	Name            string
	Slug            string
	Description     string
	MetaDescription string
	MainImage       string
}

// ScoreProduct evaluates the catalog SEO heuristics. An empty focus keyword
// short-circuits to a zero score with no checks.
func ScoreProduct(in ProductInput) Result {
	kw := Normalize(strings.TrimSpace(in.FocusKeyword))
	if kw == "" {
		return Result{}
	}

	name := Normalize(in.Name)
	meta := Normalize(in.MetaDescription)
	slug := Normalize(in.Slug)
	description := Normalize(in.Description)

	checks := []Check{
		{ID: "kw-name", Label: "Keyword en Nombre", Passed: strings.Contains(name, kw), Weight: 20},
		{ID: "meta-len", Label: "Meta Descripción", Passed: metaLenBetween(meta, 120, 160), Weight: 15},
		{ID: "kw-meta", Label: "Keyword en Meta", Passed: strings.Contains(meta, kw), Weight: 15},
		{ID: "kw-slug", Label: "Keyword en URL", Passed: strings.Contains(slug, KeywordSlug(kw)), Weight: 15},
		{ID: "kw-desc", Label: "Keyword en Descripción", Passed: strings.Contains(description, kw), Weight: 20},
		{ID: "has-img", Label: "Imagen Principal", Passed: strings.TrimSpace(in.MainImage) != "", Weight: 15},
	}

	return tally(checks)
}

// BlogInput carries the fields the article scorer inspects. Body is the
// flattened text of excerpt plus content blocks; BlockCount is the raw number
// of blocks before flattening.
type BlogInput struct {
	FocusKeyword    string
	Title           string
	Slug            string
	Excerpt         string
	MetaDescription string
	Body            string
	BlockCount      int
}

// ScoreBlog evaluates the article SEO heuristics. An empty focus keyword
// short-circuits to a zero score with no checks.
func ScoreBlog(in BlogInput) Result {
	kw := Normalize(strings.TrimSpace(in.FocusKeyword))
	if kw == "" {
		return Result{}
	}

	title := Normalize(in.Title)
	meta := Normalize(in.MetaDescription)
	slug := Normalize(in.Slug)
	excerpt := Normalize(in.Excerpt)
	body := Normalize(in.Body)

	checks := []Check{
		{ID: "kw-title", Label: "Keyword en Título", Passed: strings.Contains(title, kw), Weight: 15},
		{ID: "meta-len", Label: "Meta Descripción", Passed: metaLenBetween(meta, 140, 160), Weight: 10},
		{ID: "kw-meta", Label: "Keyword en Meta", Passed: strings.Contains(meta, kw), Weight: 10},
		{ID: "density", Label: "Densidad (x3+)", Passed: strings.Count(body, kw) >= 3, Weight: 20},
		{ID: "slug-kw", Label: "Keyword en URL", Passed: strings.Contains(slug, KeywordSlug(kw)), Weight: 15},
		{ID: "rich-content", Label: "Diseño Premium", Passed: in.BlockCount >= 3, Weight: 15},
		{ID: "excerpt-kw", Label: "Intro Optimizada", Passed: strings.Contains(excerpt, kw), Weight: 15},
	}

	return tally(checks)
}

func metaLenBetween(meta string, min, max int) bool {
	n := utf8.RuneCountInString(meta)
	return n >= min && n <= max
}

func tally(checks []Check) Result {
	score := 0
	for _, check := range checks {
		if check.Passed {
			score += check.Weight
		}
	}
	return Result{Score: score, Checks: checks}
}

// Slugify derives a URL slug from free text: lowercase, diacritics stripped,
// non-alphanumeric runs collapsed to single hyphens.
func Slugify(s string) string {
	normalized := Normalize(s)
	var b strings.Builder
	b.Grow(len(normalized))
	lastHyphen := true
	for _, r := range normalized {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
