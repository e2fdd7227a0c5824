// Package lifecycle holds shared lifecycle constants for infrastructure components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start/stop operations such as HTTP shutdown
// and database connectivity checks.
const DefaultTimeout = 10 * time.Second
