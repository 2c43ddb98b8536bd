package comics

import (
	"strconv"
	"strings"
)

// Selection narrows a chapter list. All indices are 1-based positions in
// the full list. Range is an inclusive "start-end", List is comma
// separated; Range wins when both are set. The exclude pair removes
// chapters from whatever the include pair selected.
type Selection struct {
	Range        string
	List         string
	ExcludeRange string
	ExcludeList  string
}

// FilterChapters is SelectChapters without exclusions. An invalid range
// selects nothing.
func FilterChapters(all []Chapter, rng, list string) []Chapter {
	return SelectChapters(all, Selection{Range: rng, List: list})
}

// SelectChapters applies sel to all. An invalid exclude range excludes
// nothing.
func SelectChapters(all []Chapter, sel Selection) []Chapter {
	var idx []int
	switch {
	case sel.Range != "":
		idx = rangeIndices(sel.Range, len(all))
		if idx == nil {
			return nil
		}
	case sel.List != "":
		idx = listIndices(sel.List, len(all))
	default:
		idx = make([]int, len(all))
		for i := range idx {
			idx[i] = i + 1
		}
	}

	skip := map[int]bool{}
	for _, i := range rangeIndices(sel.ExcludeRange, len(all)) {
		skip[i] = true
	}
	for _, i := range listIndices(sel.ExcludeList, len(all)) {
		skip[i] = true
	}

	kept := idx[:0:0]
	for _, i := range idx {
		if !skip[i] {
			kept = append(kept, i)
		}
	}

	return pickIndices(all, kept)
}

func rangeIndices(rng string, n int) []int {
	from, to, ok := strings.Cut(rng, "-")
	if !ok {
		return nil
	}

	start, err1 := atoi(from)
	end, err2 := atoi(to)
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || start > end || end > n {
		return nil
	}

	out := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		out = append(out, i)
	}
	return out
}

func listIndices(list string, n int) []int {
	if list == "" {
		return nil
	}

	out := []int{}
	for p := range strings.SplitSeq(list, ",") {
		idx, err := atoi(p)
		if err != nil || idx <= 0 || idx > n {
			continue
		}
		out = append(out, idx)
	}

	return out
}

func pickIndices(all []Chapter, idx []int) []Chapter {
	if idx == nil {
		return nil
	}

	out := make([]Chapter, 0, len(idx))
	for _, i := range idx {
		out = append(out, all[i-1])
	}
	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
