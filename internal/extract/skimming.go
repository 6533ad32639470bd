package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxSkimmingScore caps the skimming-optimization sub-score fed into
// engagement scoring.
const MaxSkimmingScore = 20.0

// SkimmingOptimization grades how well the markup supports skim
// reading: section headings, bullet or numbered lists, emphasis
// markers, and short paragraphs each earn a bounded share.
func SkimmingOptimization(doc *goquery.Document) float64 {
	if doc == nil {
		return 0
	}

	score := min(8.0, float64(HeaderCount(doc))*2)

	if doc.Find("ul, ol").Length() > 0 {
		score += 5
	}
	if doc.Find("strong, b, em, mark").Length() > 0 {
		score += 3
	}

	paragraphs := doc.Find("p")
	if paragraphs.Length() > 0 {
		short := 0
		paragraphs.Each(func(_ int, s *goquery.Selection) {
			if len(strings.TrimSpace(s.Text())) <= 300 {
				short++
			}
		})
		if float64(short)/float64(paragraphs.Length()) >= 0.5 {
			score += 4
		}
	}

	return min(MaxSkimmingScore, score)
}
