package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	tests := []struct {
		in   string
		want SliceInfo
	}{
		{"", SliceInfo{}},
		{"1", SliceInfo{Index(1)}},
		{"-1, ..", SliceInfo{Index(-1), All()}},
		{":, ::", SliceInfo{All(), All()}},
		{"::2, 1, newaxis, -3:", SliceInfo{All().StepBy(2), Index(1), NewAxis(), RangeFrom(-3)}},
		{"1:3", SliceInfo{Range(1, 3)}},
		{":4", SliceInfo{RangeTo(4)}},
		{"5:1:-2", SliceInfo{Range(5, 1).StepBy(-2)}},
		{"::-1,None", SliceInfo{All().StepBy(-1), NewAxis()}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSelectors(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSelectorsErrors(t *testing.T) {
	for _, in := range []string{"x", "1:2:3:4", "a:", ":b", "::c", "::0", "1,,2"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSelectors(in)
			assert.Error(t, err)
		})
	}
}

func TestParseSelectorsApply(t *testing.T) {
	a := mustFromSlice(t, seq(0, 24), Shape{2, 3, 4})
	sel, err := ParseSelectors("::-1, 1, 1:")
	require.NoError(t, err)

	b := a.Slice(sel...)
	assert.Equal(t, Shape{2, 3}, b.Shape())
	assert.Equal(t, []int{17, 18, 19, 5, 6, 7}, b.ToSlice())
}
