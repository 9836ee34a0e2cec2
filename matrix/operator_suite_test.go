package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/dye/matrix"
)

// OperatorSuite walks the element-wise operator chain on two 3×3 fixtures.
type OperatorSuite struct {
	suite.Suite
	diag  matrix.Float3x3
	dense matrix.Float3x3
}

func (s *OperatorSuite) SetupTest() {
	s.diag = matrix.Diag3[float32](1, 2, 3)
	s.dense = matrix.New3[float32](1, 2, 3, 4, 5, 6, 7, 8, 9)
}

// TestChain: (a+b)∘(a-b), scaled, rescaled, divided by itself and negated.
func (s *OperatorSuite) TestChain() {
	mat3 := s.diag.Add(s.dense)
	mat4 := s.diag.Sub(s.dense)
	mat5 := mat3.MulElem(mat4)
	mat6 := mat5.Scale(2)
	mat7 := mat5.DivScalar(2)
	mat7.ScaleAssign(2)
	mat7.DivElemAssign(mat5)
	mat8 := mat7.Neg()

	require.Equal(s.T(), matrix.New3[float32](0, -4, -9, -16, -21, -36, -49, -64, -72), mat5)
	require.Equal(s.T(), mat5.Add(mat5), mat6)
	require.Equal(s.T(), float32(-1), mat8[1][1])

	// 0/0 on the only zero entry; every other quotient is exactly one.
	require.True(s.T(), math.IsNaN(float64(mat8[0][0])))
	for i, x := range mat8.All() {
		if i == 0 {
			continue
		}
		require.Equal(s.T(), float32(-1), x, "flat index %d", i)
	}
}

// TestReceiverUntouched: binary operators return new values.
func (s *OperatorSuite) TestReceiverUntouched() {
	before := s.dense
	_ = s.dense.Add(s.diag).Sub(s.diag).MulElem(s.diag).Neg().Mul(s.diag).Transpose()
	require.Equal(s.T(), before, s.dense)
}

// TestAssignMatchesBinary: every *Assign equals its binary form.
func (s *OperatorSuite) TestAssignMatchesBinary() {
	a, b := s.dense, s.diag.Add(matrix.Identity3[float32]())

	c := a
	c.AddAssign(b)
	require.Equal(s.T(), a.Add(b), c)

	c = a
	c.SubAssign(b)
	require.Equal(s.T(), a.Sub(b), c)

	c = a
	c.MulElemAssign(b)
	require.Equal(s.T(), a.MulElem(b), c)

	c = a
	c.DivElemAssign(b)
	require.Equal(s.T(), a.DivElem(b), c)

	c = a
	c.ScaleAssign(3)
	require.Equal(s.T(), a.Scale(3), c)

	c = a
	c.DivScalarAssign(4)
	require.Equal(s.T(), a.DivScalar(4), c)
}

func TestOperatorSuite(t *testing.T) {
	suite.Run(t, new(OperatorSuite))
}
