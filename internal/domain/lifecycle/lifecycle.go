// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook (ping, migrations, graceful shutdown).
const DefaultTimeout = 15 * time.Second
