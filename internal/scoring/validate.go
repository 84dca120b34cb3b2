package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// straightLineMinimum is the response count above which identical answers
// are flagged.
const straightLineMinimum = 10

const straightLineMessage = "All responses are identical - please answer more thoughtfully"

type ValidationReport struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateResponses checks a submission for completeness, range and
// straight-lining. It never fails; every problem becomes a message.
func ValidateResponses(responses Responses, expected []string, scale Scale) ValidationReport {
	errs := []string{}

	var missing []string
	for _, id := range expected {
		if _, ok := responses[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, "Missing responses for questions: "+strings.Join(missing, ", "))
	}

	for _, id := range rangeCheckOrder(responses, expected) {
		v := responses[id]
		if !scale.Contains(v) {
			errs = append(errs, fmt.Sprintf("Invalid response for %s: %s (expected %s)", id, formatNumber(v), scale))
		}
	}

	if len(responses) > straightLineMinimum && distinctValues(responses) == 1 {
		errs = append(errs, straightLineMessage)
	}

	return ValidationReport{IsValid: len(errs) == 0, Errors: errs}
}

// rangeCheckOrder lists answered ids: expected ones first in declared order,
// then unexpected ones in natural order.
func rangeCheckOrder(responses Responses, expected []string) []string {
	ids := make([]string, 0, len(responses))
	known := make(map[string]struct{}, len(expected))
	for _, id := range expected {
		if _, dup := known[id]; dup {
			continue
		}
		known[id] = struct{}{}
		if _, ok := responses[id]; ok {
			ids = append(ids, id)
		}
	}

	var extra []string
	for id := range responses {
		if _, ok := known[id]; !ok {
			extra = append(extra, id)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return naturalLess(extra[i], extra[j]) })
	return append(ids, extra...)
}

func distinctValues(responses Responses) int {
	seen := make(map[float64]struct{}, len(responses))
	for _, v := range responses {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// naturalLess orders "q2" before "q10".
func naturalLess(a, b string) bool {
	pa, na, oka := splitNumericSuffix(a)
	pb, nb, okb := splitNumericSuffix(b)
	if oka && okb && pa == pb && na != nb {
		return na < nb
	}
	return a < b
}

func splitNumericSuffix(s string) (string, int, bool) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[i:])
	if err != nil {
		return s, 0, false
	}
	return s[:i], n, true
}
