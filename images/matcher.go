package images

import (
	"image"
	"sort"
)

// FindDuplicates compares every pair of paths at the shrink resolution and
// groups the ones whose thumbnails are identical.
//
// Paths are visited in the given order. Once a path joins a group it is never
// compared again, so grouping follows discovery order: if A~B and B~C but not
// A~C, the result depends on which of them comes first.
//
// The files must be unchanged since the resolution scan. A decode failure
// aborts the whole scan with an *ImageDecodeError and no groups.
func FindDuplicates(paths []string, sizes map[string]Size, shrinkTo int, opener Opener, sink ProgressSink) ([]DuplicateGroup, error) {
	if shrinkTo <= 0 {
		return nil, ErrInvalidShrink
	}
	sink = sinkOrNop(sink)

	n := len(paths)
	sink.Begin(PhaseMatch, n*(n-1)/2)
	defer sink.End(PhaseMatch)

	assigned := make(map[string]bool, n)
	candidates := [][]string{{}}

	for i, p1 := range paths {
		pairs := n - 1 - i
		if assigned[p1] {
			sink.Advance(pairs, p1)
			continue
		}

		thumb1, err := openThumbnail(opener, p1, shrinkTo)
		if err != nil {
			return nil, err
		}

		current := len(candidates) - 1
		for _, p2 := range paths[i+1:] {
			if assigned[p2] {
				continue
			}

			thumb2, err := openThumbnail(opener, p2, shrinkTo)
			if err != nil {
				return nil, err
			}

			// Different thumbnail sizes can never match, skip the pixel diff
			if thumb1.Bounds().Size() != thumb2.Bounds().Size() {
				continue
			}

			if Identical(thumb1, thumb2) {
				candidates[current] = append(candidates[current], p2)
			}
		}

		if len(candidates[current]) > 0 {
			members := append([]string{p1}, candidates[current]...)
			for _, p := range members {
				assigned[p] = true
			}

			group := sortGroup(members, sizes)
			candidates[current] = group.Paths
			sink.GroupFound(group)

			candidates = append(candidates, []string{})
		}

		sink.Advance(pairs, p1)
	}

	// Drop the trailing empty candidate
	if len(candidates[len(candidates)-1]) == 0 {
		candidates = candidates[:len(candidates)-1]
	}

	groups := make([]DuplicateGroup, len(candidates))
	for i, members := range candidates {
		groups[i] = DuplicateGroup{Paths: members}
	}
	return groups, nil
}

func openThumbnail(opener Opener, path string, shrinkTo int) (image.Image, error) {
	img, err := opener.Open(path)
	if err != nil {
		return nil, &ImageDecodeError{Path: path, Err: err}
	}
	return Thumbnail(img, shrinkTo), nil
}

// sortGroup orders members largest native size first. Ties keep discovery order.
func sortGroup(members []string, sizes map[string]Size) DuplicateGroup {
	sorted := make([]string, len(members))
	copy(sorted, members)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sizes[sorted[i]].Larger(sizes[sorted[j]])
	})

	return DuplicateGroup{Paths: sorted}
}
