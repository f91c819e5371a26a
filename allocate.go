package money

import "fmt"

// Allocate splits the amount across integer ratios so that the results sum
// back to the original amount exactly.
// See also methods [Amount.AllocateRatios] and [Amount.Split].
//
// Allocate returns an error if the ratio list is empty or sums to zero.
func (a Amount[T]) Allocate(ratios ...int64) ([]Amount[T], error) {
	rs := make([]Ratio[T], len(ratios))
	for i, r := range ratios {
		rs[i] = NewRatio(a.calc.FromInt64(r))
	}
	return a.AllocateRatios(rs)
}

// AllocateRatios splits the amount across possibly fractional ratios,
// guaranteeing that the results sum back to the original amount exactly.
//
// Each ratio receives the floor of its exact share; the remaining minor
// units are then handed out one at a time in original index order, skipping
// zero ratios, until nothing is left. The index-order distribution is a
// compatibility guarantee, so callers can rely on the first ratios absorbing
// the rounding remainder. A zero ratio always allocates exactly zero.
//
// AllocateRatios returns an error if the ratio list is empty or the
// normalized ratios sum to zero.
func (a Amount[T]) AllocateRatios(ratios []Ratio[T]) ([]Amount[T], error) {
	c := a.calc
	if len(ratios) == 0 {
		return nil, fmt.Errorf("allocating %v: %w", a, ErrInvalidRatios)
	}

	// Mixed scales are rescaled to a common integer footing.
	maxScale := 0
	for _, r := range ratios {
		maxScale = max(maxScale, r.scale)
	}
	zero := c.Zero()
	norm := make([]T, len(ratios))
	total := zero
	for i, r := range ratios {
		v := r.value
		if r.scale < maxScale {
			v = c.Mul(v, c.Pow(c.FromInt64(10), maxScale-r.scale))
		}
		norm[i] = v
		total = c.Add(total, v)
	}
	if c.Cmp(total, zero) == 0 {
		return nil, fmt.Errorf("allocating %v: %w", a, ErrInvalidRatios)
	}

	// Floor shares leave a non-negative integer shortfall for any sign of
	// the amount.
	res := make([]Amount[T], len(ratios))
	rest := a.units
	for i, v := range norm {
		if c.Cmp(v, zero) == 0 {
			res[i] = a.with(zero, a.scale)
			continue
		}
		share, err := divFloor(c, c.Mul(a.units, v), total)
		if err != nil {
			return nil, fmt.Errorf("allocating %v: %w", a, err)
		}
		res[i] = a.with(share, a.scale)
		rest = c.Sub(rest, share)
	}

	for c.Cmp(rest, zero) > 0 {
		distributed := false
		for i := range norm {
			if c.Cmp(rest, zero) <= 0 {
				break
			}
			if c.Cmp(norm[i], zero) == 0 {
				continue
			}
			res[i] = res[i].with(c.Inc(res[i].units), a.scale)
			rest = c.Dec(rest)
			distributed = true
		}
		if !distributed {
			break
		}
	}
	return res, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the amount cannot be divided equally, the first parts receive one extra
// minor unit each.
//
// Split returns an error if the number of parts is not a positive integer.
func (a Amount[T]) Split(parts int) ([]Amount[T], error) {
	if parts < 1 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", a, parts, ErrInvalidRatios)
	}
	ratios := make([]int64, parts)
	for i := range ratios {
		ratios[i] = 1
	}
	return a.Allocate(ratios...)
}
