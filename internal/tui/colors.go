package tui

import "github.com/charmbracelet/lipgloss"

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim renders timings and notes in the muted gray used for status suffixes
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4f586d")).
		Render(text)
}

// Emphasize renders a list of names bold and underlined
func Emphasize(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Render(text)
}

// Prompt renders the "$" prefix of a command line
func Prompt() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Bold(true).
		Render("$")
}

// Quoted renders a value as `value` in green with the value underlined
func Quoted(text string) string {
	tick := ColorGreen("`")
	value := lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Underline(true).
		Render(text)
	return tick + value + tick
}

// Badge renders a flag badge such as "(dry-run)"
func Badge(text string) string {
	return ColorYellow("(" + text + ")")
}

// FatalLabel renders the label printed in front of unrecoverable errors
func FatalLabel() string {
	return ColorRed("Fatal")
}
