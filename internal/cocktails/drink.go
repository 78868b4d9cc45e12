// Package cocktails holds the domain model shared by the upstream client,
// the proxy API, and the browse engine.
package cocktails

// Ingredient pairs an ingredient name with its (possibly empty) measure,
// e.g. {"Tequila", "1 1/2 oz"}.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure,omitempty"`
}

// Drink is a single cocktail record. List endpoints populate the summary
// fields only; detail lookups fill everything.
type Drink struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`

	// Detail-only fields.
	Instructions string       `json:"instructions,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
	Glass        string       `json:"glass,omitempty"`
	Alcoholic    string       `json:"alcoholic,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	IBA          string       `json:"iba,omitempty"`
	VideoURL     string       `json:"video_url,omitempty"`
}

// Category is a drink category as reported by the upstream filter list.
type Category struct {
	Name string `json:"name"`
}
