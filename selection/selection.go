// Package selection resolves which video and audio variants a run downloads.
package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vimeodl/vimeodl/catalog"
)

var (
	// ErrInvalidSelection is returned when manual input contains a non-integer token.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidMode is returned for an --auto value other than yes or no.
	ErrInvalidMode = errors.New("invalid selection mode")
)

// Mode chooses between automatic best-quality and manual selection.
type Mode int

const (
	Automatic Mode = iota
	Manual
)

// Modes lists the accepted --auto values.
func Modes() []string {
	return []string{"yes", "no"}
}

// ParseMode maps an --auto value to a Mode.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return Automatic, nil
	case "no":
		return Manual, nil
	default:
		return 0, fmt.Errorf("%w %q, expected one of %s", ErrInvalidMode, value, strings.Join(Modes(), ", "))
	}
}

// String returns the --auto value selecting m.
func (m Mode) String() string {
	if m == Manual {
		return "no"
	}
	return "yes"
}

// Outcome holds at most one video and one audio variant.
type Outcome struct {
	Video mo.Option[catalog.Variant]
	Audio mo.Option[catalog.Variant]
}

// Complete reports whether both streams needed for muxing were chosen.
func (o Outcome) Complete() bool {
	return o.Video.IsPresent() && o.Audio.IsPresent()
}

// Variants returns the chosen variants, video first.
func (o Outcome) Variants() []catalog.Variant {
	var variants []catalog.Variant
	for _, v := range []mo.Option[catalog.Variant]{o.Video, o.Audio} {
		if chosen, ok := v.Get(); ok {
			variants = append(variants, chosen)
		}
	}
	return variants
}

// Auto picks the top-ranked video and audio. Audio is absent when the catalog has none.
func Auto(c *catalog.Catalog) Outcome {
	var outcome Outcome

	if len(c.Video) > 0 {
		outcome.Video = mo.Some(c.Video[0])
	}

	if len(c.Audio) > 0 {
		outcome.Audio = mo.Some(c.Audio[0])
	}

	return outcome
}

// ParseIndices splits whitespace-separated option numbers.
func ParseIndices(input string) ([]int, error) {
	fields := strings.Fields(input)
	indices := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, field)
		}
		indices = append(indices, n)
	}

	return indices, nil
}

// Resolve maps option numbers to variants. A later pick of the same kind
// replaces an earlier one and numbers matching no option are skipped.
func Resolve(options []catalog.Option, indices []int) Outcome {
	var outcome Outcome

	for _, n := range indices {
		option, found := lo.Find(options, func(o catalog.Option) bool {
			return o.Index == n
		})
		if !found {
			continue
		}

		kind, ok := option.Kind()
		if !ok {
			continue
		}

		switch kind {
		case catalog.Video:
			outcome.Video = mo.Some(option.Variant)
		case catalog.Audio:
			outcome.Audio = mo.Some(option.Variant)
		}
	}

	return outcome
}

// FromInput parses typed input and resolves it against options.
func FromInput(options []catalog.Option, input string) (Outcome, []int, error) {
	indices, err := ParseIndices(input)
	if err != nil {
		return Outcome{}, nil, err
	}

	return Resolve(options, indices), indices, nil
}
