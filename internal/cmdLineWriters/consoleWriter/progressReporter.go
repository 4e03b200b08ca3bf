package consolewriter

import (
	"fmt"
	"io"
	"time"

	"github.com/RobsonDevCode/frameworkscan/internal/extensions"
	trackermodels "github.com/RobsonDevCode/frameworkscan/internal/tracker/models"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

type ProgressReporter struct {
	out         io.Writer
	quiet       bool
	solutionBar *progressbar.ProgressBar
	startTime   time.Time
}

func NewProgressReporter(out io.Writer, quiet bool) *ProgressReporter {
	return &ProgressReporter{
		out:   out,
		quiet: quiet,
	}
}

func (p *ProgressReporter) OnScanStart(solutionCount int) {
	p.startTime = time.Now()
	if p.quiet {
		return
	}

	fmt.Fprintf(p.out, "\n Found %d solution files\n", solutionCount)
	if solutionCount == 0 {
		return
	}

	p.solutionBar = progressbar.NewOptions(solutionCount,
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionSetDescription("Scanning solutions"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(p.out)
		}),
	)
}

func (p *ProgressReporter) OnSolutionScanned(solution *trackermodels.Solution) {
	if p.quiet || p.solutionBar == nil {
		return
	}
	p.solutionBar.Add(1)
}

func (p *ProgressReporter) OnScanComplete(result *trackermodels.TrackerResult) {
	if p.quiet {
		return
	}
	if p.solutionBar != nil {
		p.solutionBar.Finish()
	}

	fmt.Fprint(p.out, color.GreenString("\n Scanned %d solutions and %d projects in %s",
		len(result.Solutions),
		extensions.CountProjects(result),
		time.Since(p.startTime).Round(time.Millisecond)))

	if warnings, errs := len(result.Warnings()), len(result.Errors()); warnings > 0 || errs > 0 {
		fmt.Fprint(p.out, color.HiMagentaString(" (%d warnings, %d errors)", warnings, errs))
	}
	fmt.Fprintln(p.out)
}
