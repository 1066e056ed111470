package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/strided/tensor"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// SliceHandler prints the layout of an arange array sliced by the
// selector list in args[0].
func SliceHandler(cmd *cobra.Command, args []string) error {
	a, err := sourceArray(cmd, "shape")
	if err != nil {
		return err
	}
	sel, err := tensor.ParseSelectors(args[0])
	if err != nil {
		return err
	}
	return printArray(cmd, a.Slice(sel...))
}

// ReshapeHandler reshapes an arange array and reports whether the result
// still borrows the source elements.
func ReshapeHandler(cmd *cobra.Command, _ []string) error {
	a, err := sourceArray(cmd, "shape")
	if err != nil {
		return err
	}
	to, err := intsFlag(cmd, "to")
	if err != nil {
		return err
	}
	if transpose, _ := cmd.Flags().GetBool("transpose"); transpose {
		a = a.Transpose()
	}
	b, err := a.ToShape(tensor.NewShape(to))
	if err != nil {
		return err
	}
	if err := printArray(cmd, b); err != nil {
		return err
	}
	copied := "no"
	if b.Len() > 0 && b.Storage().Ptr() != a.Storage().Ptr() {
		copied = "yes"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "copied: %s\n", copied)
	return nil
}

// BroadcastHandler prints the stride-0 view of an arange array broadcast
// to --to.
func BroadcastHandler(cmd *cobra.Command, _ []string) error {
	a, err := sourceArray(cmd, "shape")
	if err != nil {
		return err
	}
	to, err := intsFlag(cmd, "to")
	if err != nil {
		return err
	}
	b, err := a.BroadcastTo(tensor.Shape(to))
	if err != nil {
		return err
	}
	return printArray(cmd, b)
}

// PermuteHandler prints an arange array with its axes reordered.
func PermuteHandler(cmd *cobra.Command, _ []string) error {
	a, err := sourceArray(cmd, "shape")
	if err != nil {
		return err
	}
	axes, err := intsFlag(cmd, "axes")
	if err != nil {
		return err
	}
	if len(axes) == 0 {
		return printArray(cmd, a.Transpose())
	}
	return printArray(cmd, a.Permute(axes...))
}

// DotHandler multiplies two arange arrays.
func DotHandler(cmd *cobra.Command, _ []string) error {
	lhs, err := sourceArray(cmd, "lhs")
	if err != nil {
		return err
	}
	rhs, err := sourceArray(cmd, "rhs")
	if err != nil {
		return err
	}
	return printArray(cmd, tensor.Dot(lhs, rhs))
}

// sourceArray builds 0, 1, 2, ... laid out in the shape named by the
// given flag and the --order flag when the command has one.
func sourceArray(cmd *cobra.Command, shapeFlag string) (*tensor.Array[float64], error) {
	sh, err := intsFlag(cmd, shapeFlag)
	if err != nil {
		return nil, err
	}
	order := tensor.RowMajor
	if f := cmd.Flags().Lookup("order"); f != nil {
		if order, err = tensor.ParseOrder(f.Value.String()); err != nil {
			return nil, err
		}
	}
	if err := tensor.Shape(sh).Validate(); err != nil {
		return nil, err
	}
	n := tensor.Shape(sh).ArrayLen()
	return tensor.Arange[float64](0, float64(n)).IntoShapeOrder(tensor.NewShape(sh), order)
}

// intsFlag parses a comma separated list of integers such as "2,3,-1".
// An empty value is an empty list.
func intsFlag(cmd *cobra.Command, name string) ([]int, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --%s value %q", name, s)
		}
		out[i] = v
	}
	return out, nil
}

// printArray writes the layout table of a followed by its elements
// converted to the --dtype element type.
func printArray(cmd *cobra.Command, a *tensor.Array[float64]) error {
	name, err := cmd.Flags().GetString("dtype")
	if err != nil {
		return err
	}
	dt, err := tensor.ParseDataType(name)
	if err != nil {
		return err
	}
	values, err := elements(a, dt)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	renderTable(w, []string{"PROPERTY", "VALUE"}, layoutRows(a, dt))
	fmt.Fprintf(w, "elements: [%s]\n", strings.Join(values, " "))
	return nil
}

func layoutRows[T any](a *tensor.Array[T], dt tensor.DataType) [][]string {
	byteStrides := make(tensor.Strides, a.NDims())
	for i, s := range a.Strides() {
		byteStrides[i] = s * dt.Size()
	}
	return [][]string{
		{"shape", a.Shape().String()},
		{"strides", a.Strides().String()},
		{"byte strides", byteStrides.String()},
		{"offset", strconv.Itoa(a.Offset())},
		{"order", a.Order().String()},
		{"dim", a.Dim().String()},
		{"dtype", dt.String()},
		{"storage", a.Storage().Kind().String()},
		{"len", strconv.Itoa(a.Len())},
		{"standard layout", strconv.FormatBool(a.IsStandardLayout())},
		{"contiguous", strconv.FormatBool(a.IsContiguous())},
	}
}

// elements formats the values of a after converting them to dt.
func elements(a *tensor.Array[float64], dt tensor.DataType) ([]string, error) {
	switch dt {
	case tensor.Float16:
		var out []string
		for v := range tensor.ToFloat16(a).All() {
			out = append(out, strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32))
		}
		return out, nil
	case tensor.Float32:
		return format(tensor.Cast[float32](a)), nil
	case tensor.Float64:
		return format(a), nil
	case tensor.Int32:
		return format(tensor.Cast[int32](a)), nil
	case tensor.Int64:
		return format(tensor.Cast[int64](a)), nil
	case tensor.Uint8:
		return format(tensor.Cast[uint8](a)), nil
	default:
		return nil, errors.Errorf("unsupported element type %s", dt)
	}
}

func format[T any](a *tensor.Array[T]) []string {
	out := make([]string, 0, a.Len())
	for v := range a.All() {
		out = append(out, fmt.Sprint(v))
	}
	return out
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()
}
