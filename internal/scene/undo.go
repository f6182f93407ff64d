package scene

import "github.com/google/uuid"

// UndoRecorder captures the state of a host-managed object before a reversible
// mutation. Record must be called before the mutation happens, otherwise the
// post-mutation state would be captured as the "previous" value.
type UndoRecorder interface {
	Record(target any, action string)
}

// UndoRecord is one captured mutation.
type UndoRecord struct {
	ID     uuid.UUID
	Target any
	Action string
}

// MemoryRecorder is an in-memory UndoRecorder. The host editor replaces this
// with its own history system; tests inspect the recorded sequence.
type MemoryRecorder struct {
	Records []UndoRecord
}

// Record appends a record for the target.
func (r *MemoryRecorder) Record(target any, action string) {
	r.Records = append(r.Records, UndoRecord{
		ID:     uuid.New(),
		Target: target,
		Action: action,
	})
}

// Actions returns the recorded action labels in order.
func (r *MemoryRecorder) Actions() []string {
	out := make([]string, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.Action
	}
	return out
}

// NopRecorder discards all records.
type NopRecorder struct{}

// Record implements UndoRecorder.
func (NopRecorder) Record(target any, action string) {}
