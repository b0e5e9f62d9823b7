package data

// Set is an ordered collection of data. Order is insertion order and is
// the iteration order of every criterion, which fixes tie-breaks.
type Set []*Datum

// Active returns the active data, preserving order.
func (s Set) Active() Set {
	out := make(Set, 0, len(s))
	for _, d := range s {
		if d.active {
			out = append(out, d)
		}
	}
	return out
}

// Faults returns the active fault-like data, preserving order.
func (s Set) Faults() Set {
	out := make(Set, 0, len(s))
	for _, d := range s {
		if d.active && d.kind.IsFault() {
			out = append(out, d)
		}
	}
	return out
}

// FromRecords builds a Set, stopping at the first invalid record.
func FromRecords(recs []Record, opts ...Option) (Set, error) {
	out := make(Set, 0, len(recs))
	for _, rec := range recs {
		d, err := FromRecord(rec, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
