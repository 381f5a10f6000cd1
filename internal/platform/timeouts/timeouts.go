// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// TelemetryShutdown caps how long the process waits for pending spans to
// flush after a game ends.
const TelemetryShutdown = 5 * time.Second
