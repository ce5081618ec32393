package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aayushbajaj/lbsolver/internal/letterbox"
	"github.com/aayushbajaj/lbsolver/internal/solver"
	"github.com/aayushbajaj/lbsolver/internal/storage"
	"github.com/aayushbajaj/lbsolver/pkg/stats"
	"github.com/charmbracelet/lipgloss"
)

// RenderResult formats a finished search: the groups and ignore list, the
// number of solutions, then one chain per line and a short summary.
func RenderResult(groups, ignore []string, res solver.Result) string {
	var b strings.Builder

	b.WriteString(labelStyle.Render("Groups:") + " " + renderList(groups, letterStyle) + "\n")
	b.WriteString(labelStyle.Render("Ignore:") + " " + renderList(ignore, wordStyle) + "\n")
	b.WriteString("\n")

	count := fmt.Sprintf("%d solutions found", len(res.Solutions))
	if len(res.Solutions) == 0 {
		b.WriteString(errorStyle.Render(count))
	} else {
		b.WriteString(valueStyle.Render(count))
	}
	b.WriteString("\n\n")

	for _, c := range res.Solutions {
		b.WriteString(labelStyle.Render("Solution:") + " " + renderChain(c) + "\n")
	}

	b.WriteString(helpStyle.Render(renderSummary(res)))
	b.WriteString("\n")
	return b.String()
}

func renderSummary(res solver.Result) string {
	explored := fmt.Sprintf("%s states explored in %s",
		stats.FormatCount(int64(res.Stats.Popped)),
		res.Stats.Duration.Round(time.Millisecond),
	)
	if len(res.Solutions) == 0 {
		return fmt.Sprintf("No chain of up to %d words covers the box. %s", solver.MaxDepth, explored)
	}

	sum := stats.Summarize(res.Solutions)
	return fmt.Sprintf("Shortest chain %d words, longest %d, %.1f words per chain, %.1f letters per word. %s",
		sum.ShortestChain, sum.LongestChain, sum.AvgWords, sum.AvgWordLength, explored)
}

func renderList(items []string, style lipgloss.Style) string {
	styled := make([]string, len(items))
	for i, s := range items {
		styled[i] = style.Render(s)
	}
	return "[" + strings.Join(styled, " ") + "]"
}

func renderChain(c solver.Chain) string {
	return renderList(c, wordStyle)
}

// RenderHistory formats a list of recorded runs, newest first.
func RenderHistory(runs []storage.Run) string {
	if len(runs) == 0 {
		return labelStyle.Render("No runs recorded yet. Solve with --record to keep history.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Recent runs"))
	b.WriteString("\n\n")
	for _, run := range runs {
		b.WriteString(renderRunLine(run))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRunLine(run storage.Run) string {
	return fmt.Sprintf("%s  %s  %s  %s  %s",
		labelStyle.Render(fmt.Sprintf("#%-4d", run.ID)),
		labelStyle.Render(run.CreatedAt.Local().Format("2006-01-02 15:04")),
		renderList(run.Groups, letterStyle),
		valueStyle.Render(fmt.Sprintf("%d solutions", run.SolutionCount)),
		labelStyle.Render(fmt.Sprintf("depth %d, %s states, %s",
			run.Depth,
			stats.FormatCount(run.StatesPopped),
			run.Duration.Round(time.Millisecond),
		)),
	)
}

// RenderRun formats one recorded run with its chains.
func RenderRun(run *storage.Run) string {
	var b strings.Builder
	b.WriteString(renderRunLine(*run))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Ignore:") + " " + renderList(run.Ignore, wordStyle) + "\n\n")
	for _, c := range run.Solutions {
		b.WriteString(labelStyle.Render("Solution:") + " " + renderList(c, wordStyle) + "\n")
	}
	return b.String()
}

// renderBox draws the four sides with the letters typed so far. The next slot
// to fill is highlighted when cursor is set.
func renderBox(letters []rune, cursor bool) string {
	sides := []string{"top", "right", "bottom", "left"}
	var b strings.Builder
	for side := range letterbox.GroupCount {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-7s", sides[side])))
		for slot := range letterbox.GroupSize {
			i := side*letterbox.GroupSize + slot
			b.WriteString(" ")
			switch {
			case i < len(letters):
				b.WriteString(letterStyle.Render(string(letters[i])))
			case i == len(letters) && cursor:
				b.WriteString(cursorStyle.Render("_"))
			default:
				b.WriteString(fadedStyle.Render("_"))
			}
		}
		if side < letterbox.GroupCount-1 {
			b.WriteString("\n")
		}
	}
	return boxStyle.Render(b.String())
}
