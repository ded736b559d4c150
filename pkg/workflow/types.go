package workflow

// Summary is the display data extracted from a single workflow file.
type Summary struct {
	Name     string
	File     string
	Triggers []string
	Jobs     []string
}
