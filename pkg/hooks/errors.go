package hooks

import (
	"errors"
	"fmt"
)

// Error definitions for hooks package.
var (
	// ErrHook is matched by every *HookError.
	ErrHook = errors.New("hook error")

	// ErrUnsupportedHookType is reported for hook types outside SupportedHookTypes.
	ErrUnsupportedHookType = errors.New("unsupported hook type")
)

// HookError describes an invalid hook request.
type HookError struct {
	HookType string
	Err      error
}

func (e *HookError) Error() string {
	if errors.Is(e.Err, ErrUnsupportedHookType) {
		return fmt.Sprintf("Unsupported hook type: %s", e.HookType)
	}
	return fmt.Sprintf("Hook %s: %v", e.HookType, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrHook) match any *HookError.
func (e *HookError) Is(target error) bool {
	return target == ErrHook
}
