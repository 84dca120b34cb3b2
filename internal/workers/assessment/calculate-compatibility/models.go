package calculatecompatibility

// Input names two styles directly, or two people whose latest attachment
// results supply the styles. Explicit styles win.
type Input struct {
	Style1    string `json:"style1,omitempty"`
	Style2    string `json:"style2,omitempty"`
	PersonID1 string `json:"personId1,omitempty"`
	PersonID2 string `json:"personId2,omitempty"`
}

type Output struct {
	Style1      string   `json:"style1"`
	Style2      string   `json:"style2"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Challenges  []string `json:"challenges"`
	Advice      []string `json:"advice"`
	// Source is "table" for a known pairing and "fallback" otherwise.
	Source string `json:"source"`
}

const (
	SourceTable    = "table"
	SourceFallback = "fallback"
)
