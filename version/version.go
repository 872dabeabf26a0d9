// Package version provides semantic version comparison for the CLI's
// self-reporting.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type parts struct {
	major, minor, patch int
}

func parse(s string) (parts, error) {
	fields := strings.SplitN(strings.TrimPrefix(strings.TrimSpace(s), "v"), ".", 3)
	if len(fields) < 2 {
		return parts{}, fmt.Errorf("malformed version %q", s)
	}

	var v parts
	for i, target := range []*int{&v.major, &v.minor, &v.patch} {
		if i >= len(fields) {
			break
		}
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return parts{}, fmt.Errorf("malformed version %q", s)
		}
		*target = n
	}
	return v, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal. A missing patch
// component is treated as zero.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
