package percept

// Observation is a single timestamped input from the environment.
//
// Data is an opaque payload. Most drivers pass a map[string]any of
// scalar readings, but a bare string or number works too; the framework
// never interprets it beyond what [CanonicalKey] and the reactive
// agent's rule matching need. Observations are treated as immutable
// once constructed.
type Observation struct {
	// Data is the raw payload describing what the agent senses.
	Data any

	// Timestamp is the caller-supplied observation time in seconds
	// (e.g. from TimeProvider.Unix). The framework never reads it.
	Timestamp float64

	// Metadata carries optional auxiliary values. Never interpreted.
	Metadata map[string]any
}

// Action is a named, parameterized decision produced by an agent's
// Decide and consumed by Act.
type Action struct {
	// Name identifies the action. Must be non-empty.
	Name string

	// Parameters are the action's arguments. May be nil.
	Parameters map[string]any

	// Confidence conventionally sits in [0, 1] but is not enforced.
	// Defaults to 1.0 when an Action is built with NewAction.
	Confidence float64
}

// NewAction creates an Action with the default confidence of 1.0.
func NewAction(name string, parameters map[string]any) Action {
	return Action{
		Name:       name,
		Parameters: parameters,
		Confidence: 1.0,
	}
}

// Result is the implementation-defined outcome of an Act call. Each
// agent variant documents the keys it populates.
type Result map[string]any
