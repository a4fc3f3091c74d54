package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when the package cache has no candidate for a name.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrManifestParse is returned when a raw archive listing line cannot be tokenized.
	ErrManifestParse = zerr.New("malformed manifest line")

	// ErrExternalTool is returned when a collaborator subprocess exits non-zero.
	ErrExternalTool = zerr.New("external tool failed")

	// ErrConflictingModes is returned when mutually exclusive dependency modes are requested.
	ErrConflictingModes = zerr.New("conflicting dependency modes")

	// ErrRunHadFailures is returned when at least one package in a run could not be processed.
	ErrRunHadFailures = zerr.New("run completed with failures")

	// ErrUnknownCategory is returned when a policy file references a category outside the fixed vocabulary.
	ErrUnknownCategory = zerr.New("unknown category")
)
