package shape

import "github.com/pkg/errors"

// BroadcastShape unifies two shapes under the size-1 promotion rule.
//
// Rules:
//  1. Shapes are right-aligned; missing leading axes are taken from the
//     longer shape as-is.
//  2. Equal lengths pass through.
//  3. A length of 1 takes the other side's length.
//
// Examples:
//
//	(1, 5) + (3, 4, 1) → (3, 4, 5)
//	(3, 4) + (3, 5)    → ErrIncompatibleShape
func BroadcastShape(a, b Shape) (Shape, error) {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := a.Clone()
	k := len(a) - len(b)
	for i, dim := range b {
		switch {
		case out[k+i] == dim:
		case out[k+i] == 1:
			out[k+i] = dim
		case dim == 1:
		default:
			return nil, errors.Wrapf(ErrIncompatibleShape, "cannot broadcast %v with %v (axis %d: %d vs %d)",
				a, b, k+i, out[k+i], dim)
		}
	}
	return out, nil
}

// BroadcastStrides returns the strides that let an array of shape from
// and strides be read as target. Promoted axes get stride 0.
func BroadcastStrides(from Shape, strides Strides, target Shape) (Strides, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if len(from) > len(target) {
		return nil, errors.Wrapf(ErrIncompatibleShape, "cannot broadcast %v to lower rank %v", from, target)
	}
	out := make(Strides, len(target))
	k := len(target) - len(from)
	for i, dim := range from {
		switch {
		case dim == target[k+i]:
			out[k+i] = strides[i]
		case dim == 1:
			out[k+i] = 0
		default:
			return nil, errors.Wrapf(ErrIncompatibleShape, "cannot broadcast %v to %v (axis %d: %d vs %d)",
				from, target, i, dim, target[k+i])
		}
	}
	return out, nil
}
