package apcond

import "errors"

// Sentinel errors for apcond construction-time misconfiguration.
var (
	// ErrEmptyDictionary indicates NewDictionary was called with no variable names.
	ErrEmptyDictionary = errors.New("apcond: dictionary has no variables")

	// ErrTooManyVariables indicates more variables were registered than maxVars supports.
	ErrTooManyVariables = errors.New("apcond: too many variables for a single dictionary")

	// ErrDuplicateVariable indicates the same variable name was registered twice.
	ErrDuplicateVariable = errors.New("apcond: duplicate variable name")

	// ErrDictionaryMismatch names the condition of two Cond values from
	// different Dictionary instances being combined. No function returns it:
	// Cond operations treat that case as a contract violation and panic.
	ErrDictionaryMismatch = errors.New("apcond: condition operands belong to different dictionaries")
)
