package tensor

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseSelectors parses a comma separated selector list. Each item is an
// index ("2", "-1"), a Python style range "start:stop:step" with every
// part optional, ".." or ":" for a whole axis, or "newaxis".
//
// Example:
//
//	sel, _ := tensor.ParseSelectors("::2, 1, newaxis, -3:")
func ParseSelectors(s string) (SliceInfo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return SliceInfo{}, nil
	}
	parts := strings.Split(s, ",")
	out := make(SliceInfo, 0, len(parts))
	for _, p := range parts {
		sel, err := parseSelector(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, sel)
	}
	return out, nil
}

func parseSelector(p string) (Selector, error) {
	switch p {
	case "newaxis", "None":
		return NewAxis(), nil
	case "..", ":", "::":
		return All(), nil
	}
	if !strings.Contains(p, ":") {
		i, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Errorf("tensor: invalid selector %q", p)
		}
		return Index(i), nil
	}

	fields := strings.Split(p, ":")
	if len(fields) > 3 {
		return nil, errors.Errorf("tensor: invalid range %q", p)
	}
	sl := All()
	if fields[0] != "" {
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "tensor: invalid range start in %q", p)
		}
		sl.Start = Bound{Included, v}
	}
	if fields[1] != "" {
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "tensor: invalid range stop in %q", p)
		}
		sl.End = Bound{Excluded, v}
	}
	if len(fields) == 3 && fields[2] != "" {
		v, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "tensor: invalid range step in %q", p)
		}
		if v == 0 {
			return nil, errors.Errorf("tensor: slice step cannot be zero in %q", p)
		}
		sl.Step = v
	}
	return sl, nil
}
