//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package fdm

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMalformedInput is wrapped by decoders when the source is shorter
	// than its own layout claims.
	ErrMalformedInput = errors.New("malformed input")

	// ErrTaskClosed is returned when emitting on a task after End.
	ErrTaskClosed = errors.New("print task is closed")
)

// IOError reports a sink or source that could not be opened, read or written
type IOError struct {
	Op   string // "open", "create", "write", "close", ...
	Path string // May be empty for anonymous writers
	Err  error
}

func (e *IOError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
