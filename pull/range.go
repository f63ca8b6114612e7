package pull

import "context"

// MaxSafe is the default upper bound of a counting sequence: the largest
// integer exactly representable as a float64.
const MaxSafe = 1<<53 - 1

// Range describes a numeric counting sequence with optional inclusive
// bounds. A nil From defaults to 0, a nil To defaults to MaxSafe. It is a
// construction-time descriptor only, not a sequence itself.
type Range struct {
	From *int
	To   *int
}

// Bounds resolves the descriptor's optional fields to concrete values.
func (r Range) Bounds() (from, to int) {
	from, to = 0, MaxSafe
	if r.From != nil {
		from = *r.From
	}
	if r.To != nil {
		to = *r.To
	}
	return from, to
}

// Counter yields every integer in [from, to] ascending by 1. If from > to
// the sequence is immediately exhausted; this is not an error.
func Counter(from, to int) Seq[int] {
	cur := from
	return Func[int](func(ctx context.Context) (int, bool, error) {
		if err := ctx.Err(); err != nil {
			return 0, false, err
		}
		if cur > to {
			return 0, false, nil
		}
		v := cur
		cur++
		return v, true, nil
	})
}

// FromRange resolves a descriptor into its counting sequence.
func FromRange(r Range) Seq[int] {
	from, to := r.Bounds()
	return Counter(from, to)
}
