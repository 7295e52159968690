// Package tui implements the full-screen interactive calculator: an input
// line for calculator expressions, a scrollback of evaluated results, and a
// live system load strip sampled from the host.
package tui
