package interfaces

// Console is the line-oriented collaborator the session talks to:
// ask a question, get a line of text back; print formatted text.
type Console interface {
	// Prompt prints the label and returns the next input line with the
	// trailing newline stripped. An error means input is exhausted.
	Prompt(label string) (string, error)
	Print(text string)
	Printf(format string, args ...interface{})
}
