package preprocessor

import (
	"fmt"

	"github.com/fwessels/aqcc/internal/token"
)

// DuplicateDefineError is returned by a second #define of the same name.
type DuplicateDefineError struct {
	Name string
}

func (e *DuplicateDefineError) Error() string {
	return fmt.Sprintf("duplicate define's name: '%s'", e.Name)
}

// InvalidDirectiveError is returned for a directive name outside define,
// include, ifdef, ifndef, else and endif.
type InvalidDirectiveError struct {
	Name string
	Src  token.Source
}

func (e *InvalidDirectiveError) Error() string {
	return fmt.Sprintf("%s: invalid preprocess token: '%s'", e.Src, e.Name)
}

// RecursiveMacroError is returned when a macro name shows up again while its
// own replacement is still being read.
type RecursiveMacroError struct {
	Name string
	Src  token.Source
}

func (e *RecursiveMacroError) Error() string {
	return fmt.Sprintf("%s: recursive macro expansion: '%s'", e.Src, e.Name)
}
