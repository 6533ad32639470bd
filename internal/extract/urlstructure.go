package extract

import (
	"net/url"
	"strings"
)

// MaxURLScore caps the URL-structure sub-score fed into SEO scoring.
const MaxURLScore = 10.0

// URLStructure grades how search-friendly the page URL is: shallow
// paths, hyphenated slugs, and the absence of query parameters each
// earn points. Unparseable URLs score zero.
func URLStructure(rawURL string) float64 {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return 0
	}

	score := 0.0

	segments := 0
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			segments++
		}
	}
	if segments <= 3 {
		score += 5
	} else if segments <= 5 {
		score += 2
	}

	if strings.Contains(u.Path, "-") {
		score += 3
	}
	if u.RawQuery == "" {
		score += 2
	}

	return min(MaxURLScore, score)
}
