package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// errTooLarge distinguishes "value over the allowed maximum" from generally
// malformed input, so the retry message can say which limit was hit.
var errTooLarge = errors.New("value too large")

// Prompter reads validated answers from an interactive session, re-asking
// until the input is acceptable.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}

// Choice keeps asking until the answer is one of allowed (compared after
// trimming and lowercasing).
func (p *Prompter) Choice(prompt string, allowed ...string) (string, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		fmt.Fprintln(p.out, "\nInvalid input, try again...")
	}
}

// IntChoice keeps asking until the answer parses as one of allowed.
func (p *Prompter) IntChoice(prompt string, allowed ...int) (int, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(s)
		if err == nil {
			for _, a := range allowed {
				if v == a {
					return v, nil
				}
			}
		}
		fmt.Fprintln(p.out, "\nInvalid input, try again...")
	}
}

// FloatList keeps asking until the answer is a space-separated list of at
// most maxCount non-negative numbers, each below max when max is positive.
// The returned values are sorted ascending.
func (p *Prompter) FloatList(prompt string, maxCount int, max float64) ([]float64, error) {
	for {
		s, err := p.readLine(prompt)
		if err != nil {
			return nil, err
		}
		vals, err := parseFloatList(s, maxCount, max)
		if err != nil {
			if errors.Is(err, errTooLarge) {
				fmt.Fprintf(p.out, "\nInput must be less than %g...\n", max)
			} else {
				fmt.Fprintln(p.out, "\nInvalid input, try again...")
			}
			continue
		}
		return vals, nil
	}
}

func parseFloatList(s string, maxCount int, max float64) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, errors.New("empty list")
	}
	if len(fields) > maxCount {
		return nil, fmt.Errorf("%d values given, at most %d accepted", len(fields), maxCount)
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", f)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative value %g", v)
		}
		if max > 0 && v >= max {
			return nil, fmt.Errorf("%w: %g", errTooLarge, v)
		}
		vals[i] = v
	}
	sort.Float64s(vals)
	return vals, nil
}
