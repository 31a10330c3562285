package record

// Record is a mapping from field name to Value that remembers the order in
// which keys were first inserted. Overwriting a key keeps its position.
type Record struct {
	keys   []string
	values map[string]Value
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under key.
func (r *Record) Set(key string, v Value) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Delete removes key. Removing an absent key does nothing.
func (r *Record) Delete(key string) {
	if _, exists := r.values[key]; !exists {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of r.
func (r *Record) Clone() *Record {
	c := &Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]Value, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Map returns the fields as a plain map. Ordering is lost.
func (r *Record) Map() map[string]Value {
	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Merge builds a new Record from sources applied in order, so that later
// sources override earlier ones. Nil sources are skipped.
func Merge(sources ...*Record) *Record {
	out := New()
	for _, src := range sources {
		if src == nil {
			continue
		}
		for _, k := range src.keys {
			out.Set(k, src.values[k])
		}
	}
	return out
}
