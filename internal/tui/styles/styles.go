// Package styles provides Lip Gloss styles for the mixadd terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	MutedLight = lipgloss.Color("#9CA3AF") // Light Gray
	Foreground = lipgloss.Color("#F9FAFB") // White
)

// Prompt styles.
var (
	// TitleStyle is for the prompt title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// SectionStyle is for group headers ("Installed", "Upgrades", "Available").
	SectionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true).
			MarginTop(1)

	// CursorStyle marks the focused row.
	CursorStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// NameStyle is for package names.
	NameStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// FocusedNameStyle is for the package name under the cursor.
	FocusedNameStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// VersionStyle is for version strings.
	VersionStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// UpgradeStyle is for the target version of an upgrade.
	UpgradeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	// DisabledStyle is for rows that cannot be selected.
	DisabledStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Faint(true)

	// DescriptionStyle is for package descriptions.
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Italic(true)
)

// Checkbox icons.
var (
	CheckboxChecked = lipgloss.NewStyle().
			Foreground(Success).
			Render("[✓]")

	CheckboxUnchecked = lipgloss.NewStyle().
				Foreground(Muted).
				Render("[ ]")

	CheckboxDisabled = lipgloss.NewStyle().
				Foreground(Muted).
				Render(" ✓ ")
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Help line styles.
var (
	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
