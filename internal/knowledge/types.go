package knowledge

// Item is one curated survival fact or procedure. Items are loaded once at
// startup and never mutated; every consumer gets read-only views.
type Item struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Content  string   `json:"content"`
	// Priority breaks ties between equally scored matches, 1 is highest.
	Priority int `json:"priority"`
}

type Base struct {
	Knowledge  []Item            `json:"knowledge"`
	Categories map[string]string `json:"categories"`
	Sources    []string          `json:"sources"`
}
