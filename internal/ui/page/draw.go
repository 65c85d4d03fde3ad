package page

import "github.com/charmbracelet/lipgloss"

// joinRegions stacks vertically split regions, skipping empty ones.
func joinRegions(regions ...string) string {
	kept := regions[:0]
	for _, r := range regions {
		if r != "" {
			kept = append(kept, r)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}
