package extensions

import (
	"testing"
	"unicode/utf8"

	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "abcdefg...", TruncateString("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
}

func TestTruncateString_MultiByteCharacters(t *testing.T) {
	assert.Equal(t, "ÄÖÜäöüßéèà", TruncateString("ÄÖÜäöüßéèà", 10))
	assert.Equal(t, "ÄÖÜ...", TruncateString("ÄÖÜäöüßéèàx", 6))
	assert.Equal(t, "日本", TruncateString("日本語", 2))

	truncated := TruncateString("Überweisungsprüfung", 9)
	assert.True(t, utf8.ValidString(truncated))
	assert.Equal(t, 9, utf8.RuneCountInString(truncated))
}

func TestTruncateStringStart_MultiByteCharacters(t *testing.T) {
	assert.Equal(t, "...èàx", TruncateStringStart("ÄÖÜäöüßéèàx", 6))
	assert.Equal(t, "本語", TruncateStringStart("日本語", 2))

	truncated := TruncateStringStart(`C:\Projekte\Überweisung\Prüfung.csproj`, 12)
	assert.True(t, utf8.ValidString(truncated))
	assert.Equal(t, "...ng.csproj", truncated)
}

func TestTruncateStringStart(t *testing.T) {
	assert.Equal(t, "short", TruncateStringStart("short", 10))
	assert.Equal(t, "...jklmnop", TruncateStringStart("abcdefghijklmnop", 10))
	assert.Equal(t, "ef", TruncateStringStart("abcdef", 2))
}

func TestFlattenReport(t *testing.T) {
	version := "4.7.2"
	result := &trackermodels.TrackerResult{
		Solutions: []*trackermodels.Solution{
			{
				Name:     "Shop",
				Location: "/repo/Shop.sln",
				Projects: []*trackermodels.Project{
					{
						Name:     "Web",
						Location: `Web\Web.csproj`,
						Dependencies: []trackermodels.Dependency{
							{Name: ".NetFramework", Version: &version},
						},
					},
					{Name: "Gone", Location: `Gone\Gone.csproj`},
					{
						Name:         "Core",
						Location:     `Core\Core.csproj`,
						Dependencies: []trackermodels.Dependency{{Name: ".NetFramework"}},
					},
				},
			},
			{Name: "Empty", Location: "/repo/Empty.sln"},
		},
	}

	rows := FlattenReport(result)

	assert.Equal(t, []ReportRow{
		{Solution: "Shop", SolutionPath: "/repo/Shop.sln", Project: "Web", ProjectLocation: `Web\Web.csproj`, Dependency: ".NetFramework", Version: "4.7.2"},
		{Solution: "Shop", SolutionPath: "/repo/Shop.sln", Project: "Gone", ProjectLocation: `Gone\Gone.csproj`},
		{Solution: "Shop", SolutionPath: "/repo/Shop.sln", Project: "Core", ProjectLocation: `Core\Core.csproj`, Dependency: ".NetFramework"},
		{Solution: "Empty", SolutionPath: "/repo/Empty.sln"},
	}, rows)
	assert.Equal(t, 3, CountProjects(result))
	assert.Empty(t, FlattenReport(nil))
}
