package core

import "errors"

// ErrNoPathFound is the single recoverable outcome of a search: no route
// exists between the requested cells, or no free cell is reachable when
// escaping a blocked region. Search packages wrap it with context; callers
// branch with errors.Is.
var ErrNoPathFound = errors.New("core: no path found")
