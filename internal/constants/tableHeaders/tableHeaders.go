package tableHeaders

var ReportTableHeaders = []string{
	"Solution",
	"Project",
	"Location",
	"Dependency",
	"Version",
}

var DiagnosticTableHeaders = []string{
	"Severity",
	"Solution",
	"Project",
	"Message",
}
