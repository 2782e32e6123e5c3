package model

// Venture is a directory entry used to decorate and filter the candidate
// pool. The scheduler needs nothing deeper than identity and display fields.
type Venture struct {
	ID    string
	Name  string
	Color string
	Icon  string
}
