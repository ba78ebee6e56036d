package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color
// literals.
var (
	// ColorCyan is used for identifiable nouns: zPod names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for success summary lines.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for structural chrome (list bullets, separators).
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (zPod names, template paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleSummary styles completion lines.
	StyleSummary = lipgloss.NewStyle().Foreground(ColorGreenCheck).Bold(true)
)

// FormatZPodLine formats one entry of the --list-zpods output.
func FormatZPodLine(name string) string {
	return StyleDim.Render("  - ") + StyleNoun.Render(name)
}
