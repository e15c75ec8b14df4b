/*
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package aqcc is the front end of a small C compiler for x86-64: the token
// preprocessor, and the assembly path through the peephole optimizer.
package aqcc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fwessels/aqcc/internal/asm"
	"github.com/fwessels/aqcc/internal/code"
	"github.com/fwessels/aqcc/internal/lexer"
	"github.com/fwessels/aqcc/internal/optimize"
	"github.com/fwessels/aqcc/internal/preprocessor"
	"github.com/fwessels/aqcc/internal/token"
)

// Context holds the state shared by one compilation: the define table and
// the label counter. Contexts are independent of each other.
type Context struct {
	Defines *preprocessor.Defines

	labels int
}

func NewContext() *Context {
	return &Context{Defines: preprocessor.NewDefines()}
}

// NewLabel returns a fresh local label: .L0, .L1, ...
func (c *Context) NewLabel() string {
	l := fmt.Sprintf(".L%d", c.labels)
	c.labels++
	return l
}

// PreprocessFile lexes and preprocesses the file at path. Adjacent string
// literals in the result are merged. Defines made by the file stay in
// c.Defines.
func (c *Context) PreprocessFile(path string) ([]*token.Token, error) {
	toks, err := lexer.ReadFile(path)
	if err != nil {
		return nil, err
	}
	toks, err = preprocessor.NewPreprocessor(c.Defines, nil).Process(toks)
	if err != nil {
		return nil, err
	}
	return preprocessor.ConcatStringLiterals(toks), nil
}

// OptimizeFile reads an assembly listing and runs the peephole optimizer over
// it.
func (c *Context) OptimizeFile(path string) (code.Sequence, error) {
	seq, err := asm.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return optimize.Run(seq), nil
}

// WriteTokens prints toks separated by spaces, starting a new output line
// whenever the source line changes. EOF is not printed.
func WriteTokens(w io.Writer, toks []*token.Token) error {
	bw := bufio.NewWriter(w)
	var prev *token.Token
	for _, t := range toks {
		if t.Kind == token.EOF {
			break
		}
		if prev != nil {
			if t.Src.Path != prev.Src.Path || t.Src.Line != prev.Src.Line {
				bw.WriteByte('\n')
			} else {
				bw.WriteByte(' ')
			}
		}
		bw.WriteString(t.String())
		prev = t
	}
	if prev != nil {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
