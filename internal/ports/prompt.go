package ports

import "context"

// Confirmer asks the operator a yes/no question and blocks until answered.
// It is the only suspending point in a provisioning run; there is no timeout.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
