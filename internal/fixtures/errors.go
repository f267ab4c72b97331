package fixtures

import (
	"errors"
	"fmt"
)

// ErrUnterminatedFixture indicates a fixture block that was opened but not
// closed by a lone-dot line before end of file.
var ErrUnterminatedFixture = errors.New("fixture block not terminated before end of file")

// ErrUnterminatedMeta indicates a meta block opening delimiter without a
// closing delimiter.
var ErrUnterminatedMeta = errors.New("meta block opened but never closed")

// NotFoundError reports a group name that resolved to no fixture file under
// the corpus root.
type NotFoundError struct {
	Group string
	Root  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("fixture group %q not found under %s", e.Group, e.Root)
}
