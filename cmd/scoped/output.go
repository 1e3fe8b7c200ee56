package main

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	good = color.New(color.FgGreen)
	bad  = color.New(color.FgRed)
	warn = color.New(color.FgYellow)
	info = color.New(color.FgCyan)
)

// describeDays renders a calendar-day countdown for humans.
func describeDays(days int) string {
	switch {
	case days == 0:
		return warn.Sprint("launch day")
	case days == 1:
		return info.Sprint("1 day until launch")
	case days > 1:
		return info.Sprintf("%d days until launch", days)
	case days == -1:
		return "launched 1 day ago"
	default:
		return fmt.Sprintf("launched %d days ago", -days)
	}
}

// outcome renders a launch result.
func outcome(success *bool) string {
	switch {
	case success == nil:
		return "pending"
	case *success:
		return good.Sprint("success")
	default:
		return bad.Sprint("failure")
	}
}
