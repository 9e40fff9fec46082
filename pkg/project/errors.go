package project

import "errors"

// ErrFileOp marks a failed upload or attachment deletion. File operations
// are best effort and never roll back document state.
var ErrFileOp = errors.New("file operation failed")
