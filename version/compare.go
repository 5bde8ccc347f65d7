// Package version compares release versions and checks for updates.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Compare orders two "major.minor.patch" versions, with or without a "v" prefix.
// It returns 1 when a is newer, -1 when b is newer and 0 when they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		switch {
		case av[i] > bv[i]:
			return 1, nil
		case av[i] < bv[i]:
			return -1, nil
		}
	}

	return 0, nil
}

func parse(s string) ([3]int, error) {
	var parts [3]int

	fields := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".", 3)
	if len(fields) != 3 {
		return parts, fmt.Errorf("version %q is not major.minor.patch", s)
	}

	for i, field := range fields {
		// pre-release and build suffixes are ignored
		field, _, _ = strings.Cut(field, "-")
		field, _, _ = strings.Cut(field, "+")

		n, err := strconv.Atoi(field)
		if err != nil {
			return parts, fmt.Errorf("version %q: %w", s, err)
		}
		parts[i] = n
	}

	return parts, nil
}
