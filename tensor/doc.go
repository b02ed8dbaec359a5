// Copyright 2025 QuaTenNet. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for dense tensors in QuaTenNet.
//
// # Overview
//
// A Dense value is an immutable multi-dimensional array of float64 scalars:
// a flat row-major buffer plus an explicit Shape. Every operation returns a
// new value, so tensors can be shared freely across contractions.
//
// # Basic Usage
//
//	import "github.com/hoomania/quatennet/tensor"
//
//	func main() {
//	    a, _ := tensor.New(tensor.Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
//	    b := tensor.Ones(tensor.Shape{3, 3})
//	    i := tensor.Eye(3)
//
//	    t, _ := a.Transpose(1, 0)          // Shape: [3, 2]
//	    r, _ := a.Reshape(tensor.Shape{6}) // Shape: [6]
//	}
//
// Contractions over Dense values live in the tennet package.
package tensor
