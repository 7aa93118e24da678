package qlearn

// stateAction is the composite key of a Q-table entry.
type stateAction struct {
	state  string
	action string
}

// QTable maps (state, action) pairs to estimated cumulative future
// reward. Missing entries are worth 0.0. Reads never materialize
// entries; only the learning update inserts, so Len reflects the
// number of pairs actually updated, not the number ever looked at.
type QTable struct {
	entries map[stateAction]float64
}

// NewQTable creates an empty Q-table.
func NewQTable() *QTable {
	return &QTable{entries: make(map[stateAction]float64)}
}

// Get returns the value for the (state, action) pair, or 0.0 when the
// pair has never been updated. Non-mutating.
func (q *QTable) Get(state, action string) float64 {
	return q.entries[stateAction{state: state, action: action}]
}

// Set stores the value for the (state, action) pair, materializing the
// entry if needed.
func (q *QTable) Set(state, action string, value float64) {
	q.entries[stateAction{state: state, action: action}] = value
}

// Len returns the number of materialized entries.
func (q *QTable) Len() int {
	return len(q.entries)
}

// Mean returns the mean value across all materialized entries, or 0.0
// for an empty table.
func (q *QTable) Mean() float64 {
	if len(q.entries) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range q.entries {
		sum += v
	}
	return sum / float64(len(q.entries))
}

// States returns the number of distinct states appearing in the table.
func (q *QTable) States() int {
	seen := make(map[string]struct{}, len(q.entries))
	for key := range q.entries {
		seen[key.state] = struct{}{}
	}
	return len(seen)
}

// Entries returns a copy of all materialized entries keyed as
// state -> action -> value. Use this to serialize the table
// externally; the framework itself never persists it.
func (q *QTable) Entries() map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for key, value := range q.entries {
		byAction, ok := out[key.state]
		if !ok {
			byAction = make(map[string]float64)
			out[key.state] = byAction
		}
		byAction[key.action] = value
	}
	return out
}
