package file

const (
	// Error messages for credential store operations
	ErrReadStore  = "failed to read credential store"
	ErrOpenStore  = "failed to open credential store"
	ErrWriteStore = "failed to write credential store"
	ErrParseStore = "failed to parse credential store"
)
