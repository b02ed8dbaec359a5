package tensor

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVDResult holds the thin singular value decomposition of a rank-2 tensor:
// the input equals U · diag(Sigma) · VT.
type SVDResult struct {
	U     *Dense // left singular vectors, shape (r, min(r, c))
	Sigma *Dense // singular values in descending order, shape (min(r, c))
	VT    *Dense // transposed right singular vectors, shape (min(r, c), c)
}

// SVD computes the thin singular value decomposition of a rank-2 tensor.
func SVD(t *Dense) (*SVDResult, error) {
	if t.Rank() != 2 {
		return nil, fmt.Errorf("tensor: SVD requires a rank-2 tensor, got rank %d: %w", t.Rank(), ErrShapeMismatch)
	}
	r, c := t.shape[0], t.shape[1]

	var svd mat.SVD
	if !svd.Factorize(mat.NewDense(r, c, t.data), mat.SVDThin) {
		return nil, errors.New("tensor: SVD factorization failed to converge")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	k := len(values)
	return &SVDResult{
		U:     fromMat(&u, Shape{r, k}),
		Sigma: mustNew(Shape{k}, values),
		VT:    fromMat(v.T(), Shape{k, c}),
	}, nil
}

// fromMat copies a gonum matrix into a Dense of the given rank-2 shape.
func fromMat(m mat.Matrix, shape Shape) *Dense {
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = m.At(i, j)
		}
	}
	return mustNew(shape, data)
}
