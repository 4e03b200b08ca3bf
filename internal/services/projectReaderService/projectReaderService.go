package projectreaderservice

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
)

const (
	MsBuildNamespace        = "http://schemas.microsoft.com/developer/msbuild/2003"
	propertyGroupElement    = "PropertyGroup"
	frameworkVersionElement = "TargetFrameworkVersion"
	frameworkVersionPrefix  = "v"
)

var (
	utf8Bom    = []byte{0xEF, 0xBB, 0xBF}
	utf16LeBom = []byte{0xFF, 0xFE}
	utf16BeBom = []byte{0xFE, 0xFF}
)

type ProjectReaderService interface {
	ReadFrameworkVersion(path string) (*string, error)
}

type ProjectReader struct{}

func NewProjectReader() *ProjectReader {
	return &ProjectReader{}
}

func (r *ProjectReader) ReadFrameworkVersion(path string) (*string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading csproj file %s error: %w", path, err)
	}

	version, err := ParseFrameworkVersion(content)
	if err != nil {
		return nil, fmt.Errorf("error parsing xml file %s error: %w", path, err)
	}

	return version, nil
}

// ParseFrameworkVersion returns the first TargetFrameworkVersion declared in any
// PropertyGroup of an MSBuild project, without its leading "v". It returns nil
// when the document declares none. The whole document is decoded so that a
// malformed file is reported even after the value was found.
func ParseFrameworkVersion(content []byte) (*string, error) {
	content, transcoded, err := transcodeUtf16(content)
	if err != nil {
		return nil, err
	}

	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(content, utf8Bom)))
	decoder.CharsetReader = charset.NewReaderLabel
	if transcoded {
		// already UTF-8, the declared encoding no longer applies
		decoder.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
			return input, nil
		}
	}

	var (
		stack     []xml.Name
		rootSeen  bool
		capturing bool
		captured  strings.Builder
		version   *string
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if rootSeen {
					return nil, fmt.Errorf("multiple root elements, found %s", t.Name.Local)
				}
				rootSeen = true
			}

			if version == nil && !capturing && isFrameworkVersion(t.Name, stack) {
				capturing = true
				captured.Reset()
			}
			stack = append(stack, t.Name)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

			if capturing && isFrameworkVersion(t.Name, stack) {
				capturing = false
				value := strings.TrimPrefix(strings.TrimSpace(captured.String()), frameworkVersionPrefix)
				version = &value
			}

		case xml.CharData:
			if capturing {
				captured.Write(t)
				continue
			}
			if len(stack) == 0 && len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("unexpected text outside of the root element")
			}
		}
	}

	if !rootSeen {
		return nil, fmt.Errorf("no root element found")
	}

	return version, nil
}

// isFrameworkVersion reports whether name is a TargetFrameworkVersion element
// whose parent, the last entry of stack, is a PropertyGroup.
func isFrameworkVersion(name xml.Name, stack []xml.Name) bool {
	if name.Space != MsBuildNamespace || name.Local != frameworkVersionElement || len(stack) == 0 {
		return false
	}

	parent := stack[len(stack)-1]
	return parent.Space == MsBuildNamespace && parent.Local == propertyGroupElement
}

// transcodeUtf16 converts a document starting with a UTF-16 byte order mark to
// UTF-8. Other documents are returned untouched.
func transcodeUtf16(content []byte) ([]byte, bool, error) {
	var endianness unicode.Endianness
	switch {
	case bytes.HasPrefix(content, utf16LeBom):
		endianness = unicode.LittleEndian
	case bytes.HasPrefix(content, utf16BeBom):
		endianness = unicode.BigEndian
	default:
		return content, false, nil
	}

	decoded, err := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return nil, false, fmt.Errorf("error decoding utf-16 document: %w", err)
	}

	return decoded, true, nil
}
