package dating

import "errors"

var (
	// ErrMetadataUnreadable marks a tier-1 miss. It never leaves this package
	// through Resolve.
	ErrMetadataUnreadable = errors.New("capture metadata unreadable")
	// ErrTimestampUnreadable marks a failed filesystem timestamp read.
	ErrTimestampUnreadable = errors.New("filesystem timestamp unreadable")
	// ErrDateUnavailable is returned when every tier failed.
	ErrDateUnavailable = errors.New("date unavailable")
)
