// Package renderer turns analytics results into markdown reports. It only
// consumes plain series and result structs; it has no knowledge of how the
// numbers were computed.
package renderer

import "fmt"

// percent formats a ratio as a signed percentage.
func percent(ratio float64) string { return fmt.Sprintf("%+.2f%%", ratio*100) }

// value formats a statistic value with enough digits for small return-scale
// quantities.
func value(v float64) string { return fmt.Sprintf("%.6f", v) }
