package comics

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleChapters(n int) []Chapter {
	out := make([]Chapter, n)
	for i := range out {
		out[i] = Chapter{Name: "第" + strconv.Itoa(i+1) + "章"}
	}
	return out
}

func TestFilterChapters(t *testing.T) {
	all := sampleChapters(5)

	assert.Equal(t, all, FilterChapters(all, "", ""))
	assert.Equal(t, all[1:4], FilterChapters(all, "2-4", ""))
	assert.Equal(t, all[1:4], FilterChapters(all, " 2 - 4 ", "1"))
	assert.Nil(t, FilterChapters(all, "4-2", ""))
	assert.Nil(t, FilterChapters(all, "1-9", ""))
	assert.Nil(t, FilterChapters(all, "x", ""))
	assert.Equal(t, []Chapter{all[0], all[2], all[4]}, FilterChapters(all, "", "1, 3,,5,9,a"))
	assert.Empty(t, FilterChapters(all, "", "0"))
}

func TestSelectChapters_Exclude(t *testing.T) {
	all := sampleChapters(6)

	assert.Equal(t, []Chapter{all[0], all[3], all[4], all[5]},
		SelectChapters(all, Selection{ExcludeRange: "2-3"}))
	assert.Equal(t, []Chapter{all[1], all[4]},
		SelectChapters(all, Selection{Range: "2-5", ExcludeList: "3, 4"}))
	assert.Equal(t, []Chapter{all[0], all[5]},
		SelectChapters(all, Selection{List: "1,2,6", ExcludeRange: "2-3", ExcludeList: "9"}))
	assert.Equal(t, all, SelectChapters(all, Selection{ExcludeRange: "5-2"}))
	assert.Empty(t, SelectChapters(all, Selection{ExcludeRange: "1-6"}))
	assert.Nil(t, SelectChapters(all, Selection{Range: "x", ExcludeList: "1"}))
}

func TestSelectChapters_MatchesFilterWithoutExclude(t *testing.T) {
	all := sampleChapters(5)

	for _, sel := range []Selection{{}, {Range: "2-4"}, {List: "5,1"}, {Range: "1-9"}} {
		assert.Equal(t, FilterChapters(all, sel.Range, sel.List), SelectChapters(all, sel))
	}
}
