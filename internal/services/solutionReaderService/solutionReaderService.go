package solutionreaderservice

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
)

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// projectLine matches `Project("{guid}") = "name", "path.csproj"` at the start of
// a line; any trailing fields such as the project guid are ignored. A match never
// crosses a line break.
var projectLine = regexp.MustCompile(`(?m)^[ \t]*Project\("\{[\w-]*\}"\)[ \t]*=[ \t]*"([^"\r\n]*)"[ \t]*,[ \t]*"([^"\r\n]*\.csproj)"`)

type ProjectReference struct {
	Name string
	Path string
}

type SolutionReaderService interface {
	ReadSolution(path string) ([]ProjectReference, error)
}

type SolutionReader struct{}

func NewSolutionReader() *SolutionReader {
	return &SolutionReader{}
}

func (r *SolutionReader) ReadSolution(path string) ([]ProjectReference, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading solution file %s error: %w", path, err)
	}

	return ParseSolution(content), nil
}

// ParseSolution returns the project references of a solution in the order they
// appear, duplicates included. Lines that are not project declarations are
// skipped. Line length is not limited.
func ParseSolution(content []byte) []ProjectReference {
	content = bytes.TrimPrefix(content, utf8Bom)

	references := []ProjectReference{}
	for _, match := range projectLine.FindAllSubmatch(content, -1) {
		references = append(references, ProjectReference{
			Name: string(match[1]),
			Path: string(match[2]),
		})
	}

	return references
}
