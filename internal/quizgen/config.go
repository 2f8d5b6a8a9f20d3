package quizgen

// Config holds generation parameters.
type Config struct {
	// MaxTokens caps the model response size.
	MaxTokens int
	// Temperature controls sampling randomness.
	Temperature float64
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
