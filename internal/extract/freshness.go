package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/krishirajsinh-p/WebBoost/internal/model"
)

// MaxFreshnessScore caps the content-freshness sub-score fed into SEO
// scoring.
const MaxFreshnessScore = 10.0

// Meta properties and item props that carry a publication or
// modification date.
var dateMetaNames = []string{
	"article:published_time",
	"article:modified_time",
	"datePublished",
	"dateModified",
	"og:updated_time",
}

// Date layouts tried when parsing page-supplied timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ContentFreshness finds the most recent publication or modification
// date the page declares and grades its age: under 90 days earns the
// full score, under a year most of it, under two years some, anything
// older a token point. Pages declaring no date score zero.
func ContentFreshness(doc *goquery.Document, now time.Time) model.DataBag {
	bag := model.DataBag{
		"has_date":        false,
		"latest_date":     "",
		"age_days":        0,
		"freshness_score": 0.0,
	}
	if doc == nil {
		return bag
	}

	var latest time.Time
	consider := func(raw string) {
		if t, ok := parseDate(raw); ok && t.After(latest) && !t.After(now) {
			latest = t
		}
	}

	doc.Find("meta[property], meta[itemprop], meta[name]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("property")
		if key == "" {
			key, _ = s.Attr("itemprop")
		}
		if key == "" {
			key, _ = s.Attr("name")
		}
		for _, name := range dateMetaNames {
			if strings.EqualFold(key, name) {
				content, _ := s.Attr("content")
				consider(content)
			}
		}
	})
	doc.Find("time[datetime]").Each(func(_ int, s *goquery.Selection) {
		dt, _ := s.Attr("datetime")
		consider(dt)
	})

	if latest.IsZero() {
		return bag
	}

	ageDays := int(now.Sub(latest).Hours() / 24)
	var score float64
	switch {
	case ageDays <= 90:
		score = MaxFreshnessScore
	case ageDays <= 365:
		score = 7
	case ageDays <= 730:
		score = 4
	default:
		score = 1
	}

	bag["has_date"] = true
	bag["latest_date"] = latest.Format("2006-01-02")
	bag["age_days"] = ageDays
	bag["freshness_score"] = score
	return bag
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
