package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/ajroetker/simdslice/hwy"
	"github.com/ajroetker/simdslice/hwy/contrib/reduce"
	"github.com/ajroetker/simdslice/internal/config"
)

type operation string

const (
	opSum   operation = "sum"
	opMin   operation = "min"
	opMax   operation = "max"
	opStats operation = "stats"
)

var opShort = map[operation]string{
	opSum:   "Print the sum of the input",
	opMin:   "Print the minimum of the input (none if empty)",
	opMax:   "Print the maximum of the input (none if empty)",
	opStats: "Print count, sum, min and max of the input",
}

func newReduceCmd(opts *options, op operation) *cobra.Command {
	return &cobra.Command{
		Use:   string(op) + " [file]",
		Short: opShort[op],
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return runReduce(cmd.OutOrStdout(), string(data), opts.cfg.Type, op, opts.cfg.Verbose)
		},
	}
}

// runReduce parses input as the named element type and prints the result
// of op to w.
func runReduce(w io.Writer, input, typ string, op operation, verbose bool) error {
	switch typ {
	case "i8":
		return reduceTyped(w, input, typ, op, verbose, parseSigned[int8](8))
	case "i16":
		return reduceTyped(w, input, typ, op, verbose, parseSigned[int16](16))
	case "i32":
		return reduceTyped(w, input, typ, op, verbose, parseSigned[int32](32))
	case "i64":
		return reduceTyped(w, input, typ, op, verbose, parseSigned[int64](64))
	case "int":
		return reduceTyped(w, input, typ, op, verbose, parseSigned[int](strconv.IntSize))
	case "u8":
		return reduceTyped(w, input, typ, op, verbose, parseUnsigned[uint8](8))
	case "u16":
		return reduceTyped(w, input, typ, op, verbose, parseUnsigned[uint16](16))
	case "u32":
		return reduceTyped(w, input, typ, op, verbose, parseUnsigned[uint32](32))
	case "u64":
		return reduceTyped(w, input, typ, op, verbose, parseUnsigned[uint64](64))
	case "uint":
		return reduceTyped(w, input, typ, op, verbose, parseUnsigned[uint](strconv.IntSize))
	case "f32":
		return reduceTyped(w, input, typ, op, verbose, parseFloat[float32](32))
	case "f64":
		return reduceTyped(w, input, typ, op, verbose, parseFloat[float64](64))
	default:
		return fmt.Errorf("%w %q", config.ErrUnknownType, typ)
	}
}

func reduceTyped[T hwy.Lanes](w io.Writer, input, typ string, op operation, verbose bool, parse func(string) (T, error)) error {
	values, err := parseValues(input, parse)
	if err != nil {
		return err
	}

	if verbose {
		path := "vector"
		if reduce.UsingFallback() {
			path = "scalar"
		}
		log.Printf("reducing %d %s values on the %s path (cpu: %s)", len(values), typ, path, hwy.CurrentName())
	}

	s := reduce.Of(values)
	switch op {
	case opSum:
		_, err = fmt.Fprintln(w, s.Sum())
	case opMin:
		v, ok := s.Min()
		err = printOptional(w, "", v, ok)
	case opMax:
		v, ok := s.Max()
		err = printOptional(w, "", v, ok)
	case opStats:
		lo, hi, ok := s.MinMax()
		if _, err = fmt.Fprintf(w, "count: %d\nsum: %v\n", s.Len(), s.Sum()); err != nil {
			return err
		}
		if err = printOptional(w, "min: ", lo, ok); err != nil {
			return err
		}
		err = printOptional(w, "max: ", hi, ok)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
	return err
}

func printOptional[T hwy.Lanes](w io.Writer, label string, v T, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, label+"none")
		return err
	}
	_, err := fmt.Fprintf(w, "%s%v\n", label, v)
	return err
}

// parseValues splits input on whitespace and commas and parses each token.
func parseValues[T hwy.Lanes](input string, parse func(string) (T, error)) ([]T, error) {
	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	values := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := parse(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid value #%d %q: %w", i+1, tok, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseSigned[T hwy.SignedInts](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bits)
		return T(v), err
	}
}

func parseUnsigned[T hwy.UnsignedInts](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bits)
		return T(v), err
	}
}

func parseFloat[T hwy.Floats](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		return T(v), err
	}
}
