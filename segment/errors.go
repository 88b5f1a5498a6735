package segment

import "errors"

var (
	ErrNoSectionMarkers = errors.New("no section markers found in input")
)
