// Package classifier wraps the exported occupancy model: the feature
// contract the adapter must honor, the session that evaluates the
// shipped artifact, and the startup self-check that pins both.
package classifier

import (
	"context"
	"errors"
	"fmt"
)

// Session evaluates the occupancy classifier for one input vector and
// returns the discrete class index. Only the label output is exposed;
// the probability output of the export toolchain is not consumed.
type Session interface {
	Run(ctx context.Context, input []float32) (int64, error)
}

// ErrModelNotLoaded is returned when inference is requested before the
// model artifact has been loaded (or after loading failed).
var ErrModelNotLoaded = errors.New("occupancy model not loaded")

// InferenceError wraps a per-call engine failure. Calls are never
// retried; the failure propagates to the caller as-is.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }
