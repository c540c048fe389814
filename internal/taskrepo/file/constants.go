package file

const (
	// Error messages for task store operations
	ErrReadStore  = "failed to read task store"
	ErrOpenStore  = "failed to open task store"
	ErrWriteStore = "failed to write task store"
	ErrParseStore = "failed to parse task store"
)
