package docurl

// Metadata outside internal/rules is not checked.
type Metadata struct {
	DocURL string
}

var ignored = Metadata{DocURL: "https://example.com/outside"}
