// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided n-dimensional arrays over shared,
// borrowed or owned storage.
//
// # Overview
//
// An Array is a view: a shape, one stride per axis and an offset into a
// storage. Element (i0, i1, ...) lives at offset + Σ ik·strides[k]. Most
// operations only rewrite that view:
//   - Slice and SliceMut with per-axis selectors (Index, Range, NewAxis)
//   - Transpose, Permute, InsertAxis and Squeeze
//   - BroadcastTo with stride-0 axes
//   - ToShape, which borrows the storage whenever the strides allow it
//
// # Basic Usage
//
//	import "github.com/born-ml/strided/tensor"
//
//	func main() {
//	    a, _ := tensor.Arange[float64](0, 24).IntoShape(tensor.NewShape{2, 3, 4})
//
//	    // Every other column of the second row block, walked backwards.
//	    b := a.Slice(tensor.Index(1), tensor.All(), tensor.All().StepBy(-2))
//	    fmt.Println(b.Shape(), b.Strides(), b.Offset()) // [3, 2] [4, -2] 15
//
//	    c := tensor.Dot(a.Slice(tensor.Index(0)), a.Slice(tensor.Index(1)).Transpose())
//	    fmt.Println(c.Shape()) // [3, 3]
//	}
//
// # Storage
//
// Arrays reach their elements through one of five storage kinds:
//   - Owned: a uniquely owned buffer, the result of every constructor
//   - View: a read-only borrow
//   - MutView: an exclusive mutable borrow, released with Release
//   - Cow: a borrow that copies itself the first time it is written
//   - Shared: a reference-counted read-only buffer
//
// Taking a mutable view of an owned buffer locks the owner against other
// mutable borrows until the view is released. Violations panic.
//
// # Orders
//
// Arrays remember a memory order, RowMajor or ColumnMajor. It decides the
// layout of copies (ToOwned), the reading order of reshapes and the layout
// of results computed from the array.
//
// # Debugging
//
// Building with the debug tag, or setting STRIDED_DEBUG=1, checks every
// constructed layout against its storage. SetLogger installs a slog logger
// that reports copies made on behalf of the caller.
package tensor
