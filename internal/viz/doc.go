// Package viz renders computed field frames to the terminal: a braille-dot
// canvas, a small rotating camera, and lipgloss styles shared by the CLI
// and the interactive viewer.
package viz
