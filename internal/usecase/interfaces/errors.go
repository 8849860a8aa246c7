package interfaces

import "errors"

var (
	// ErrConditionNotMet is returned by guarded writes when the stored record
	// no longer matches the expected state.
	ErrConditionNotMet = errors.New("record condition not met")
	// ErrLockNotObtained is returned by ILocker when another holder owns the key.
	ErrLockNotObtained = errors.New("lock not obtained")
	// ErrContentNotFound is returned by IContentStore for unknown references.
	ErrContentNotFound = errors.New("content not found")
)
