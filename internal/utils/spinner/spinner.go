package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner starts a terminal spinner on stderr with the given message,
// so stdout stays clean for piped output (--json).
// Returns a stop function to halt and clear the spinner.
//
// Usage:
//
//	stop := spinner.StartSpinner("Fetching weather for Nantes")
//	report, err := svc.Lookup(ctx, q)
//	stop()
//	if err != nil { return err }
func StartSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return func() {
		s.Stop()
	}
}
