package collect

import "github.com/vk/gagather/internal/record"

// PruneFunc mutates a parsed result before it is merged into a run record.
type PruneFunc func(*record.Record)

// PruneKeys returns a PruneFunc that deletes the named keys.
func PruneKeys(keys ...string) PruneFunc {
	keys = append([]string(nil), keys...)
	return func(r *record.Record) {
		for _, k := range keys {
			r.Delete(k)
		}
	}
}
