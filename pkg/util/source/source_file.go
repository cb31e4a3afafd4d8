// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"fmt"
	"strings"
)

// File represents a named piece of source text, such as a polynomial given on
// the command line.
type File struct {
	// Name used when reporting errors against this file.
	filename string
	// Contents held as runes so spans index characters rather than bytes.
	contents []rune
}

// NewSourceFile constructs a new source file from a given string.
func NewSourceFile(filename string, text string) *File {
	return &File{filename, []rune(text)}
}

// Filename returns the name associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *File) Contents() []rune {
	return s.contents
}

// Text returns the text covered by a given span of this file.
func (s *File) Text(span Span) string {
	return string(s.contents[span.start:span.end])
}

// SyntaxError constructs a syntax error over a given span of this file with a
// given message.
func (s *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// EnclosingLine determines the line of this file which contains the start of
// a given span.  If the span starts beyond the end of the file, then the last
// line is returned.
func (s *File) EnclosingLine(span Span) Line {
	var (
		num   = 1
		start = 0
	)
	//
	for i := 0; i < len(s.contents) && i < span.start; i++ {
		if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	// Find end of line
	end := start
	for end < len(s.contents) && s.contents[end] != '\n' {
		end++
	}
	//
	return Line{s.contents, Span{start, end}, num}
}

// Line identifies a single line within a source file, along with its line
// number (counting from 1).
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line, excluding the newline.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// SyntaxError is a structured error which retains the span of the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the source file this error was reported against.
func (p *SyntaxError) SourceFile() *File {
	return p.srcfile
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d:%s", p.srcfile.filename, p.span.Start(), p.span.End(), p.msg)
}

// Highlight renders the line enclosing this error followed by a marker line
// underlining the offending span, e.g.
//
//	(+ x y)
//	     ^
func (p *SyntaxError) Highlight() (string, string) {
	line := p.srcfile.EnclosingLine(p.span)
	// Clip span to the enclosing line
	start := p.span.start - line.Start()
	length := min(max(p.span.Length(), 1), line.Length()-start+1)
	//
	return line.String(), strings.Repeat(" ", start) + strings.Repeat("^", length)
}
