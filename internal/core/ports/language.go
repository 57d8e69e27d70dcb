package ports

// LanguageFallbacks provides ordered language fallback chains.
//
//go:generate mockgen -source=language.go -destination=mocks/mock_language.go -package=mocks
type LanguageFallbacks interface {
	// FallbacksFor returns the ordered fallback chain for a language code,
	// excluding the code itself. May be empty.
	FallbacksFor(lang string) []string
}
