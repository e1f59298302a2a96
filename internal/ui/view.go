package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/cheatmenu/internal/catalog"
	"github.com/atomicstack/cheatmenu/internal/ui/state"
	"github.com/atomicstack/cheatmenu/internal/version"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	listMinWidth  = 20
	panelMinWidth = 30
	listFraction  = 0.35 // share of the width given to the list column
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.viewSize()
	m.help.Width = width

	bottom := m.bottomLines(width)
	bodyH := height - 1 - len(bottom)
	if bodyH < 1 {
		bodyH = 1
	}

	parts := make([]string, 0, 2+len(bottom))
	parts = append(parts, m.titleLine(width))
	if width >= listMinWidth+panelMinWidth {
		parts = append(parts, m.viewSideBySide(width, bodyH))
	} else {
		parts = append(parts, m.viewVertical(width, bodyH))
	}
	parts = append(parts, bottom...)
	return strings.Join(parts, "\n")
}

func (m *Model) viewSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) viewSideBySide(width, height int) string {
	listW := int(float64(width) * listFraction)
	if listW < listMinWidth {
		listW = listMinWidth
	}
	panelW := width - listW
	left := m.renderList(listW, height)
	title, lines := m.panelContent(panelW - 2)
	right := renderPanel(title, lines, panelW, height)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// viewVertical stacks the panel below the list on narrow terminals.
func (m *Model) viewVertical(width, height int) string {
	panelH := height / 2
	if panelH < 3 {
		return m.renderList(width, height)
	}
	listH := height - panelH
	title, lines := m.panelContent(width - 2)
	return m.renderList(width, listH) + "\n" + renderPanel(title, lines, width, panelH)
}

func (m *Model) titleLine(width int) string {
	title := fmt.Sprintf(" %s v%s ", version.Name, version.Version)
	crumb := m.menuHeader()
	line := []styledLine{{text: title + " " + crumb, style: styles.Breadcrumb, prefixStyle: styles.Title, highlightFrom: len([]rune(title))}}
	return renderLines(applyWidth(line, width))
}

func (m *Model) menuHeader() string {
	segments := []string{defaultRootTitle}
	if m.nav.Screen() == state.ScreenSecondary {
		if g, ok := m.nav.CurrentGroup(); ok {
			if label := strings.TrimSpace(g.Description); label != "" {
				segments = append(segments, strings.Join(strings.Fields(label), " "))
			}
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) bottomLines(width int) []string {
	var status styledLine
	switch {
	case m.errMsg != "":
		status = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	case m.infoMsg != "":
		status = styledLine{text: m.infoMsg, style: styles.Info}
	}
	lines := []string{renderLines(applyWidth([]styledLine{status}, width))}
	if m.showFooter {
		hint := m.help.View(screenHelp{keys: m.keys, screen: m.nav.Screen()})
		if styles.Footer != nil {
			hint = styles.Footer.Render(hint)
		}
		lines = append(lines, fitRow(hint, width))
	}
	return lines
}

// listLabels returns the labels shown in the list column and the cursor.
func (m *Model) listLabels() ([]string, int) {
	if m.nav.Screen() == state.ScreenSecondary {
		g, _ := m.nav.CurrentGroup()
		labels := make([]string, 0, g.Len())
		for _, e := range g.Entries {
			labels = append(labels, entryLabel(e))
		}
		return labels, m.nav.EntryCursor()
	}
	labels := make([]string, 0, m.nav.GroupCount())
	for i := 0; i < m.nav.GroupCount(); i++ {
		g, _ := m.nav.Group(i)
		labels = append(labels, g.Description)
	}
	return labels, m.nav.GroupCursor()
}

func entryLabel(e catalog.Entry) string {
	if strings.TrimSpace(e.ShortInfo) != "" {
		return e.ShortInfo
	}
	return e.Command
}

func (m *Model) renderList(width, height int) string {
	labels, cursor := m.listLabels()
	lines := make([]styledLine, 0, height)
	if len(labels) == 0 {
		msg := "(no entries)"
		if m.nav.RunningState() == state.Empty {
			msg = "Loading…"
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		screen := m.nav.Screen()
		start := ensureVisible(m.listOffset[screen], cursor, len(labels), height)
		m.listOffset[screen] = start
		end := start + height
		if end > len(labels) {
			end = len(labels)
		}
		for idx := start; idx < end; idx++ {
			lines = append(lines, buildItemLine(labels[idx], idx == cursor, width))
		}
	}
	for len(lines) < height {
		lines = append(lines, styledLine{})
	}
	rows := strings.Split(renderLines(applyWidth(lines, width)), "\n")
	for i, row := range rows {
		rows[i] = fitRow(row, width)
	}
	return strings.Join(rows, "\n")
}

// panelContent builds the right-hand panel: entry summaries of the
// highlighted group on the main screen, the long description of the
// highlighted entry on the secondary screen.
func (m *Model) panelContent(innerW int) (string, []styledLine) {
	if innerW < 1 {
		innerW = 1
	}
	g, ok := m.nav.CurrentGroup()
	if !ok {
		if m.nav.RunningState() == state.Empty {
			return "Preview", nil
		}
		return "Preview", []styledLine{{text: fmt.Sprintf("No entries in %s", m.nav.SourcePath()), style: styles.Info}}
	}
	if m.nav.Screen() == state.ScreenMain {
		lines := make([]styledLine, 0, g.Len())
		for _, e := range g.Entries {
			lines = append(lines, styledLine{text: "· " + entryLabel(e), style: styles.PanelBody})
		}
		if len(lines) == 0 {
			lines = append(lines, styledLine{text: "(no entries)", style: styles.Info})
		}
		return "Preview: " + strings.TrimSpace(g.Description), lines
	}
	e, _ := m.nav.CurrentEntry()
	lines := make([]styledLine, 0, 8)
	for _, text := range wrapText(e.LongInfo, innerW) {
		lines = append(lines, styledLine{text: text, style: styles.PanelBody})
	}
	if len(lines) > 0 {
		lines = append(lines, styledLine{})
	}
	for _, text := range wrapText("$ "+e.Command, innerW) {
		lines = append(lines, styledLine{text: text, style: styles.PanelCommand})
	}
	return "Description", lines
}

func wrapText(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if width < 1 {
		width = 1
	}
	return strings.Split(wrap.String(wordwrap.String(text, width), width), "\n")
}

func buildItemLine(label string, selected bool, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// renderPanel draws a bordered box of exactly height rows and totalWidth
// columns with title in the top border.
func renderPanel(title string, content []styledLine, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)

	innerW := totalWidth - 2
	innerH := height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	scrollSeg := ""
	if len(content) > innerH {
		scrollSeg = fmt.Sprintf(" %d/%d ", innerH, len(content))
		content = content[:innerH]
	}
	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - len([]rune(titleSeg)) - len([]rune(scrollSeg))
	if dashes < 0 {
		scrollSeg = ""
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		titleSeg = truncateText(titleSeg, totalWidth-4)
		dashes = totalWidth - 4 - len([]rune(titleSeg))
	}
	if dashes < 0 {
		dashes = 0
	}
	border := styles.PanelBorder.Render
	topLine := border(tlc+hz) +
		styles.PanelTitle.Render(titleSeg) +
		border(strings.Repeat(hz, dashes)) +
		styles.Footer.Render(scrollSeg) +
		border(hz+trc)
	bottomLine := border(blc + strings.Repeat(hz, innerW) + brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var line styledLine
		if i < len(content) {
			line = content[i]
		}
		text := truncateText(line.text, innerW)
		if w := len([]rune(text)); w < innerW {
			text += strings.Repeat(" ", innerW-w)
		}
		if line.style != nil {
			text = line.style.Render(text)
		}
		rows = append(rows, border(vt)+text+border(vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// ensureVisible returns the list offset that keeps cursor inside a window of
// maxVisible rows.
func ensureVisible(offset, cursor, total, maxVisible int) int {
	if total == 0 || maxVisible <= 0 {
		return 0
	}
	maxOffset := total - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if upper := offset + maxVisible - 1; cursor > upper {
		offset = cursor - maxVisible + 1
	}
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	return offset
}

// fitRow pads or truncates an already styled row to width visible columns.
func fitRow(row string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(row) > width {
		row = truncate.StringWithTail(row, uint(width), "…")
	}
	if w := lipgloss.Width(row); w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
