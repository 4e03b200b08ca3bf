package solutionreaderservice

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the solution reader:
// - project lines are returned in file order, duplicates included
// - the second guid and other trailing fields are ignored
// - non csproj projects, folders and malformed lines are skipped
// - CRLF line endings and a UTF-8 BOM are handled
// - a solution without project lines yields an empty, non-nil slice
// - lines longer than any buffer size do not hide other project lines
// - ReadSolution wraps file system errors

const solutionHeader = "Microsoft Visual Studio Solution File, Format Version 12.00\r\n# Visual Studio Version 17\r\n"

func TestParseSolution(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected []ProjectReference
	}{
		{
			name: "projects in file order",
			content: solutionHeader +
				`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Web", "src\Web\Web.csproj", "{11111111-1111-1111-1111-111111111111}"` + "\r\n" +
				"EndProject\r\n" +
				`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Core", "src\Core\Core.csproj", "{22222222-2222-2222-2222-222222222222}"` + "\r\n" +
				"EndProject\r\n",
			expected: []ProjectReference{
				{Name: "Web", Path: `src\Web\Web.csproj`},
				{Name: "Core", Path: `src\Core\Core.csproj`},
			},
		},
		{
			name: "duplicates are kept",
			content: `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Core", "Core.csproj", "{22222222-2222-2222-2222-222222222222}"` + "\n" +
				`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Core", "Core.csproj", "{22222222-2222-2222-2222-222222222222}"` + "\n",
			expected: []ProjectReference{
				{Name: "Core", Path: "Core.csproj"},
				{Name: "Core", Path: "Core.csproj"},
			},
		},
		{
			name: "other project kinds and folders are skipped",
			content: `Project("{2150E333-8FDC-42A3-9474-1A3956D46DE8}") = "Solution Items", "Solution Items", "{33333333-3333-3333-3333-333333333333}"` + "\n" +
				`Project("{F2A71F9B-5D33-465A-A702-920D77279786}") = "Lib", "Lib\Lib.fsproj", "{44444444-4444-4444-4444-444444444444}"` + "\n" +
				`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Api", "Api\Api.csproj"` + "\n",
			expected: []ProjectReference{
				{Name: "Api", Path: `Api\Api.csproj`},
			},
		},
		{
			name:     "malformed lines are skipped",
			content:  "Project(\"{FAE04EC0}\") = \"Broken\n\"Api\\Api.csproj\"\nProject = \"x.csproj\"\n",
			expected: []ProjectReference{},
		},
		{
			name:    "leading whitespace and absolute paths",
			content: "\t" + `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Tools", "C:\build\Tools\Tools.csproj", "{55555555-5555-5555-5555-555555555555}"`,
			expected: []ProjectReference{
				{Name: "Tools", Path: `C:\build\Tools\Tools.csproj`},
			},
		},
		{
			name:     "no projects",
			content:  solutionHeader + "Global\r\nEndGlobal\r\n",
			expected: []ProjectReference{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			references := ParseSolution([]byte(tt.content))
			assert.Equal(t, tt.expected, references)
		})
	}
}

func TestParseSolution_StripsByteOrderMark(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "App.csproj", "{66666666-6666-6666-6666-666666666666}"`)...)

	references := ParseSolution(content)

	require.Len(t, references, 1)
	assert.Equal(t, "App.csproj", references[0].Path)
}

func TestParseSolution_VeryLongLines(t *testing.T) {
	longComment := "# " + strings.Repeat("x", 2*1024*1024)
	content := `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "App.csproj", "{66666666-6666-6666-6666-666666666666}"` + "\r\n" +
		longComment + "\r\n" +
		`Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "Lib", "Lib\Lib.csproj", "{77777777-7777-7777-7777-777777777777}"` + "\r\n"

	references := ParseSolution([]byte(content))

	assert.Equal(t, []ProjectReference{
		{Name: "App", Path: "App.csproj"},
		{Name: "Lib", Path: `Lib\Lib.csproj`},
	}, references)
}

func TestReadSolution_VeryLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Big.sln")
	content := `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "App.csproj", "{66666666-6666-6666-6666-666666666666}"` + "\n" +
		"\tGlobalSection(Big) = preSolution " + strings.Repeat("y", 2*1024*1024) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	references, err := NewSolutionReader().ReadSolution(path)

	require.NoError(t, err)
	assert.Equal(t, []ProjectReference{{Name: "App", Path: "App.csproj"}}, references)
}

func TestReadSolution(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.sln")
	content := `Project("{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}") = "App", "App\App.csproj", "{66666666-6666-6666-6666-666666666666}"`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reader := NewSolutionReader()
	references, err := reader.ReadSolution(path)

	require.NoError(t, err)
	assert.Equal(t, []ProjectReference{{Name: "App", Path: `App\App.csproj`}}, references)
}

func TestReadSolution_MissingFile(t *testing.T) {
	reader := NewSolutionReader()

	_, err := reader.ReadSolution(filepath.Join(t.TempDir(), "Missing.sln"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "error reading solution file")
}
