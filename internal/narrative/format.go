package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"gopaired/domain/ttest"
)

// f2 is the fixed two-decimal rendering used for every computed value
func f2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// raw renders an input cell without forcing decimals
func raw(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// apaNumber drops the leading zero, as APA style does for values below one
func apaNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.TrimPrefix(s, "0")
}

// pValue renders a p-value with three decimals, or "< .001"
func pValue(p float64) string {
	if p < 0.001 {
		return "< .001"
	}
	return "= " + apaNumber(roundTo(p, 3))
}

func roundTo(v float64, places int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return f
}

// previewLen is how many items a preview shows, and whether it was cut short
func previewLen(n int) (int, bool) {
	if n > ttest.MaxPreviewRows {
		return ttest.MaxPreviewRows, true
	}
	return n, false
}

// joinPreview joins at most MaxPreviewRows rendered items with sep, adding the
// truncation marker when there were more.
func joinPreview(items []string, sep string) string {
	limit, truncated := previewLen(len(items))
	out := strings.Join(items[:limit], sep)
	if truncated {
		out += sep + ttest.TruncationMarker
	}
	return out
}

func mapValues(values []float64, render func(float64) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = render(v)
	}
	return out
}

func percent(level float64) string {
	return strconv.FormatFloat(roundTo(level*100, 4), 'f', -1, 64) + "%"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
