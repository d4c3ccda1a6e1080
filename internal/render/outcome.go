package render

import "github.com/fatih/color"

// Outcome formats a computed answer: the value in bold green, or the failure
// in red.
func Outcome(value int, err error, opts Options) string {
	if err != nil {
		return opts.style(color.FgRed).Sprint("Failed to compute result: ") +
			opts.style(color.FgRed, color.Bold).Sprint(err.Error())
	}

	return opts.style(color.FgGreen, color.Bold).Sprint(value)
}
