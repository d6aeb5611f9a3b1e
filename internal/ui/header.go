package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

const (
	maxSourceWidth = 32
	maxNoticeWidth = 48
)

// renderHeader renders the one-line status bar above the canvas.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	stats := snap.Stats

	parts := []string{styles.Logo.Render("gratail")}
	if snap.HasHeader {
		parts = append(parts,
			styles.Text.Render(truncateMiddle(snap.Source, maxSourceWidth)),
			styles.MutedText.Render(fmt.Sprintf("%dx%d", snap.Header.Width, snap.Header.Height)),
		)
	}

	parts = append(parts, m.renderState())

	parts = append(parts,
		styles.MutedText.Render("cmds ")+styles.Text.Render(humanize.Comma(int64(stats.Applied))),
		styles.MutedText.Render("read ")+styles.Text.Render(humanize.Bytes(uint64(max(stats.Cursor, 0)))),
		styles.MutedText.Render("frames ")+styles.Text.Render(humanize.Comma(int64(stats.Presents))),
	)
	if stats.Dropped > 0 {
		parts = append(parts, styles.WarningText.Render("off-surface "+humanize.Comma(int64(stats.Dropped))))
	}
	if stats.Malformed > 0 {
		parts = append(parts, styles.WarningText.Render("malformed "+humanize.Comma(int64(stats.Malformed))))
	}
	if m.panX != 0 || m.panY != 0 {
		parts = append(parts, styles.FaintText.Render(fmt.Sprintf("@%d,%d", m.panX, m.panY*2)))
	}
	if m.notice != "" {
		parts = append(parts, styles.AccentText.Render(truncateMiddle(m.notice, maxNoticeWidth)))
	}

	return styles.Header.
		Width(m.width).
		MaxHeight(headerHeight).
		Render(strings.Join(parts, "  "))
}

// renderState labels what the ingestion loop is doing.
func (m Model) renderState() string {
	styles := m.theme.Styles()
	snap := m.snapshot
	switch {
	case snap.LastError != nil:
		return styles.DangerText.Render("ERROR " + snap.LastError.Error())
	case snap.Stats.Done:
		return styles.SuccessText.Render("DONE")
	case !snap.HasHeader:
		return styles.MutedText.Render("waiting")
	case snap.IsStalled():
		return styles.WarningText.Render("idle")
	default:
		return styles.SuccessText.Render("LIVE")
	}
}

// renderFooter renders the help bar.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.
		Width(m.width).
		Render(m.help.View(m.keys))
}

func (m Model) footerHeight() int {
	return lipgloss.Height(m.renderFooter())
}

// renderRecent renders the recent-commands pane.
func (m Model) renderRecent() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Render("recent commands")
	body := lipgloss.JoinVertical(lipgloss.Left, title, m.recent.View())
	return styles.Pane.
		Width(m.width).
		MaxHeight(recentPaneHeight).
		Render(body)
}
