package recommend

// Config tunes the recommendation components
type Config struct {
	// Neighbors is the k of the nearest neighbor model. Building needs k+1 items.
	Neighbors int
	// SimilarCount is how many similar items the similarity tiers ask for
	SimilarCount int
	// ResultSize is the length of a composed recommendation list
	ResultSize int
	// TopGenres is how many preferred genres feed genre discovery
	TopGenres int
	// MaxActors caps how many credited actors count towards preferences
	MaxActors int

	Window          int
	MinWatchEvents  int
	MinTransactions int
	MinSupport      float64
	MinConfidence   float64
	MaxRules        int
}

// DefaultConfig returns the default tuning
func DefaultConfig() Config {
	return Config{
		Neighbors:       5,
		SimilarCount:    3,
		ResultSize:      5,
		TopGenres:       3,
		MaxActors:       5,
		Window:          3,
		MinWatchEvents:  5,
		MinTransactions: 3,
		MinSupport:      0.1,
		MinConfidence:   0.5,
		MaxRules:        10,
	}
}

// withDefaults fills zero values from DefaultConfig
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Neighbors <= 0 {
		c.Neighbors = d.Neighbors
	}
	if c.SimilarCount <= 0 {
		c.SimilarCount = d.SimilarCount
	}
	if c.ResultSize <= 0 {
		c.ResultSize = d.ResultSize
	}
	if c.TopGenres <= 0 {
		c.TopGenres = d.TopGenres
	}
	if c.MaxActors <= 0 {
		c.MaxActors = d.MaxActors
	}
	if c.Window <= 0 {
		c.Window = d.Window
	}
	if c.MinWatchEvents <= 0 {
		c.MinWatchEvents = d.MinWatchEvents
	}
	if c.MinTransactions <= 0 {
		c.MinTransactions = d.MinTransactions
	}
	if c.MinSupport <= 0 {
		c.MinSupport = d.MinSupport
	}
	if c.MinConfidence <= 0 {
		c.MinConfidence = d.MinConfidence
	}
	if c.MaxRules <= 0 {
		c.MaxRules = d.MaxRules
	}
	return c
}
