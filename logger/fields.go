package logger

// Standard field names for structured logging.
// Use these constants instead of raw strings to keep keys consistent.
const (
	// Identity
	FieldRunID    = "run_id"
	FieldInstance = "instance"
	FieldSeed     = "seed"

	// Components
	FieldComponent = "component"
	FieldEncoding  = "encoding"
	FieldStyle     = "style"

	// Framework shape
	FieldAtoms       = "atoms"
	FieldAssumptions = "assumptions"
	FieldStandpoints = "standpoints"
	FieldRules       = "rules"
	FieldFacts       = "facts"
	FieldEdges       = "edges"
	FieldGoals       = "goals"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldDir  = "dir"
	FieldPath = "path"
)
