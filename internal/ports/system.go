package ports

import "context"

// Rebooter hands control to the platform's reboot mechanism. A successful
// call does not return in practice; callers treat it as a terminal handoff.
type Rebooter interface {
	Reboot(ctx context.Context) error
}
