package codec

import "errors"

// Decode error taxonomy shared by the codec and the replay decoder.
// All are fatal to the current decode pass: record boundaries are
// tag-dependent, so nothing can be safely skipped.
var (
	// ErrBadMagic indicates the file header signature did not match.
	ErrBadMagic = errors.New("bad magic")

	// ErrTruncated indicates the buffer ran out mid-read.
	ErrTruncated = errors.New("truncated")

	// ErrInvalidEncoding indicates non-ASCII bytes where ASCII is required.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnknownTag indicates an unrecognized message-type, content-type
	// or command-type value. Wrapping always carries the numeric tag and
	// the decode context.
	ErrUnknownTag = errors.New("unknown tag")
)
