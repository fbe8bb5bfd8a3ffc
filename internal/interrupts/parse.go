package interrupts

import (
	"context"
	"fmt"
	"iter"
	"math/bits"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var numberedIRQRegex = regexp.MustCompile(`^[0-9]`)

var (
	errMissingHeader = errors.New("missing CPU header line")
	errTotalOverflow = errors.New("total of CPU counts overflows uint64")
)

// ParseError reports a malformed line of the interrupt statistics file.
type ParseError struct {
	// Line is the 1-based line number in the source.
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed interrupts line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CompileFilter compiles a row filter. The empty string selects DefaultFilter.
func CompileFilter(filter string) (*regexp.Regexp, error) {
	if filter == "" {
		filter = DefaultFilter
	}
	re, err := regexp.Compile(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return re, nil
}

// Parse splits the contents of /proc/interrupts into its header and body and
// returns a sequence that parses the body rows matching filter on demand.
// The filter is applied to the raw line text, not to the parsed fields.
func Parse(ctx context.Context, data []byte, filter *regexp.Regexp) (iter.Seq2[Row, error], error) {
	if len(data) == 0 {
		return nil, &ParseError{Line: 1, Err: errMissingHeader}
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	// Only the number of header columns matters, their labels are dropped.
	nCPU := len(strings.Fields(lines[0]))
	body := lines[1:]

	return func(yield func(Row, error) bool) {
		for i, line := range body {
			if err := ctx.Err(); err != nil {
				yield(Row{}, err)
				return
			}
			if !filter.MatchString(line) {
				continue
			}
			row, err := parseRow(line, nCPU)
			if err != nil {
				yield(Row{}, &ParseError{Line: i + 2, Text: strings.TrimSpace(line), Err: err})
				return
			}
			if !yield(row, nil) {
				return
			}
		}
	}, nil
}

// parseRow converts one body line given the CPU column count of its header.
func parseRow(line string, nCPU int) (Row, error) {
	fields := strings.Fields(line)
	if len(fields) < nCPU+1 {
		return Row{}, fmt.Errorf("expected at least %d fields, got %d", nCPU+1, len(fields))
	}

	row := Row{
		IRQ:    fields[0],
		PerCPU: make([]uint64, nCPU),
	}
	for i, field := range fields[1 : nCPU+1] {
		count, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return Row{}, errors.Wrapf(err, "CPU%d count", i)
		}
		row.PerCPU[i] = count

		var carry uint64
		if row.Total, carry = bits.Add64(row.Total, count, 0); carry != 0 {
			return Row{}, errTotalOverflow
		}
	}

	rest := fields[nCPU+1:]
	if numberedIRQRegex.MatchString(row.IRQ) {
		// Numbered IRQs carry the controller type and trigger mode.
		if len(rest) < 2 {
			return Row{}, fmt.Errorf("numbered IRQ %s lacks type and edge fields", row.IRQ)
		}
		row.Type = rest[0]
		row.Edge = rest[1]
		rest = rest[2:]
	}
	row.Device = strings.Join(rest, " ")

	return row, nil
}
