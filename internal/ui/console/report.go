package console

import (
	"fmt"

	"github.com/gopak/csv2nfo/internal/logging"
	"github.com/gopak/csv2nfo/internal/manager"
)

func printReport(rep manager.Report) {
	for _, w := range rep.Written {
		logging.Gray("created: " + w.Path)
	}
	for _, f := range rep.Failures {
		logging.Error(failureLine(f))
	}
	for _, k := range rep.NoMatch {
		logging.Debug("no " + k.Label() + " matched")
	}
	if rep.Count() > 0 {
		logging.Success(summary(rep))
		return
	}
	logging.Info(summary(rep))
}

func failureLine(f manager.Failure) string {
	return fmt.Sprintf("skipped %s: %v", f.Kind, f.Err)
}

func summary(rep manager.Report) string {
	if rep.Count() == 0 && len(rep.Failures) == 0 {
		return "0 NFO files created. No matches found."
	}
	return fmt.Sprintf("%d NFO file(s) created.", rep.Count())
}
