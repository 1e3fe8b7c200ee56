// Package launch provides stateless launch-planning calculations: payload
// capacity from liftoff thrust and orbit altitude, calendar-day countdowns
// against an injectable clock, and helpers over launch records.
//
// Nothing in this package performs I/O or keeps state between calls.
package launch
