package quantfolio

import "fmt"

// InsufficientDataError reports that an operation requires more observations
// than the input series supplies.
type InsufficientDataError struct {
	Op   string // operation that failed, e.g. "roll" or "regression"
	Need int    // observations required
	Have int    // observations supplied
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: insufficient data: need %d observations, have %d", e.Op, e.Need, e.Have)
}

// WeightSumError reports portfolio weights that do not sum to 1 within
// tolerance, or a negative weight.
type WeightSumError struct {
	Sum float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("portfolio weights sum to %v, want 1 within %v", e.Sum, WeightTolerance)
}

// DegenerateInputError reports a zero-variance window that breaks a ratio
// statistic (Sharpe, beta, regression).
type DegenerateInputError struct {
	Stat string // statistic that failed
	On   string // right-edge date of the offending window
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("%s: window ending %s has zero variance", e.Stat, e.On)
}

// AlignmentError reports input series for a multi-series statistic with
// mismatched date indices.
type AlignmentError struct {
	Op string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%s: input series have mismatched date indices", e.Op)
}
