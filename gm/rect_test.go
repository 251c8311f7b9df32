package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect_Contains(t *testing.T) {
	r := RectWithCenterAndSize(VecOf(1, 1), VecOf(4, 2))

	require.Equal(t, VecOf(-1, 0), r.Min)
	require.Equal(t, VecOf(3, 2), r.Max)

	require.True(t, r.Contains(VecOf(1, 1)))
	require.True(t, r.Contains(VecOf(-1, 0)), "boundary is inclusive")
	require.True(t, r.Contains(VecOf(3, 2)), "boundary is inclusive")
	require.False(t, r.Contains(VecOf(3.01, 1)))
	require.False(t, r.Contains(VecOf(1, -0.01)))
}

func TestRect_Geometry(t *testing.T) {
	r := RectWithPoints(VecOf(3, 0), VecOf(1, 2))
	require.Equal(t, RectWithOriginAndSize(VecOf(1, 0), VecOf(2, 2)), r)
	require.Equal(t, VecOf(2, 1), r.Center())
	require.Equal(t, VecOf(2, 2), r.Size())
	require.Equal(t, VecOf(3, 0), r.TopRight())
	require.Equal(t, VecOf(1, 2), r.BottomLeft())
	require.Equal(t, RectWithSize(VecOf(2, 2)), r.Translate(VecOf(-1, 0)))
}
