package economy

import "fmt"

// UnknownCorpError indicates an offer references a corp ID absent from the
// planning snapshot.
type UnknownCorpError struct {
	CorpID string
}

func (e *UnknownCorpError) Error() string {
	return "unknown corp: " + e.CorpID
}

func NewUnknownCorpError(corpID string) *UnknownCorpError {
	return &UnknownCorpError{CorpID: corpID}
}

// InvalidMarginError indicates a corp declared a margin outside [0, 1).
type InvalidMarginError struct {
	CorpID string
	Margin float64
}

func (e *InvalidMarginError) Error() string {
	return fmt.Sprintf("corp %s has invalid margin %.3f (want [0, 1))", e.CorpID, e.Margin)
}

func NewInvalidMarginError(corpID string, margin float64) *InvalidMarginError {
	return &InvalidMarginError{CorpID: corpID, Margin: margin}
}
