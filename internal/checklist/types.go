package checklist

// Entry is one checkbox line read from markdown.
type Entry struct {
	Line      int    // index among parsed checkboxes
	Name      string // text without the quantity suffix
	Quantity  int    // 0 when the line has no "xN" suffix
	Purchased bool   // true if [x]
	RawLine   string
}

// ChecklistStats represents checklist progress
type ChecklistStats struct {
	Total     int // Total checkboxes
	Completed int // Checked checkboxes
	Pending   int // Unchecked checkboxes
}
