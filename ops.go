package timewindow

// differenceThreshold is the tolerance Difference uses to decide whether a candidate
// touches the window at all.
const differenceThreshold = 1

// Intersects reports whether any of the windows intersects w. Windows that merely touch
// intersect; threshold widens the gap that is still considered touching.
func (w Window) Intersects(windows []Window, threshold float64) bool {
	for _, other := range windows {
		// w ends before other starts, or starts after other ends
		doNotIntersect := w.end < other.start-threshold ||
			w.start > other.end+threshold

		if !doNotIntersect {
			return true
		}
	}
	return false
}

// ContainedBy reports whether any of the windows encloses w, allowing each edge of w
// to stick out by overlapThreshold seconds.
func (w Window) ContainedBy(windows []Window, overlapThreshold float64) bool {
	for _, other := range windows {
		if other.start <= w.start+overlapThreshold &&
			other.end >= w.end-overlapThreshold {
			return true
		}
	}
	return false
}

// Union merges w with every window it intersects in a single left to right pass.
// The merged window comes first, followed by the windows that did not intersect it in
// their original order. A window that would only touch a later extension of the merged
// window is not merged, so callers wanting chains merged should sort by start first.
// An empty input yields an empty result.
func (w Window) Union(windows []Window, threshold float64) []Window {
	if len(windows) == 0 {
		return []Window{}
	}

	var untouched []Window
	acc := w.Clone()
	for _, candidate := range windows {
		acc, untouched = unionStep(acc, untouched, candidate, threshold)
	}

	// unlike every other constructor the merged duration is not rounded
	acc.duration = acc.end - acc.start

	return append([]Window{acc}, untouched...)
}

func unionStep(acc Window, untouched []Window, candidate Window, threshold float64) (Window, []Window) {
	if !acc.Intersects([]Window{candidate}, threshold) {
		return acc, append(untouched, candidate)
	}

	next := acc
	if candidate.start < next.start {
		next.start = candidate.start
	}
	if candidate.end > next.end {
		next.end = candidate.end
	}
	return next, untouched
}

// Difference subtracts each window from w independently and collects the remaining
// pieces. The reference is always w itself: when a candidate does not intersect w
// (within one second) a copy of w is appended, once per such candidate.
func (w Window) Difference(windows []Window) []Window {
	result := []Window{}
	if len(windows) == 0 {
		return result
	}

	ref := w.Clone()
	for _, candidate := range windows {
		result = append(result, differenceStep(ref, candidate)...)
	}
	return result
}

func differenceStep(ref, candidate Window) []Window {
	if !ref.Intersects([]Window{candidate}, differenceThreshold) {
		return []Window{ref}
	}

	switch {
	case ref.start < candidate.start && ref.end < candidate.end:
		return []Window{newWindow(ref.start, candidate.start)}
	case ref.start > candidate.start && ref.end > candidate.end:
		return []Window{newWindow(candidate.end, ref.end)}
	case ref.start < candidate.start && ref.end > candidate.end:
		return []Window{
			newWindow(ref.start, candidate.start),
			newWindow(candidate.end, ref.end),
		}
	}

	// covered by the candidate or sharing an edge with it
	return nil
}
