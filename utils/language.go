package utils

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Languages a summary can be steered towards. Loading every model lingua
// ships costs too much memory for a long-running server.
var summaryLanguages = []lingua.Language{
	lingua.English,
	lingua.German,
	lingua.French,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Polish,
	lingua.Russian,
	lingua.Ukrainian,
	lingua.Turkish,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Japanese,
	lingua.Korean,
	lingua.Chinese,
}

// DetectLanguage returns the English name of the language text is written in.
// ok is false when the text is too short or ambiguous to tell.
func DetectLanguage(text string) (name string, ok bool) {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().FromLanguages(summaryLanguages...).Build()
	})
	language, ok := detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return language.String(), true
}
