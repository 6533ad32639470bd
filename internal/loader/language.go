package loader

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// maxDetectionSample bounds the text fed to language detection.
// A few kilobytes of prose is plenty for a confident call and keeps
// detection fast on very long pages.
const maxDetectionSample = 4096

// detectableLanguages are the languages the detector distinguishes.
// Restricting the set keeps model loading time and memory reasonable.
var detectableLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// DetectLanguage returns the ISO 639-1 code of the dominant language
// of text ("en", "de", ...), or empty when the text is too short or
// detection is inconclusive.
//
// Design decision: The detector is built lazily and shared because
// loading the language models is the expensive part; per-page detection
// on the shared instance is cheap and safe for concurrent use.
func DetectLanguage(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return ""
	}
	if len(sample) > maxDetectionSample {
		cut := maxDetectionSample
		// Back up to a rune boundary so the sample never ends in a
		// partial multi-byte character.
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectableLanguages...).
			Build()
	})

	language, ok := detector.DetectLanguageOf(sample)
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
