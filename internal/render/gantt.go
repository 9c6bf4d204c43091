package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/me/gosched/pkg/model"
)

// GanttChart writes an ASCII chart of the timeline. Each slice is drawn as a
// cell two characters wide per tick; idle gaps appear as unboxed dashes.
// Timestamps run along the bottom at every cell boundary.
//
//	 -------- ----------
//	|   P1   |    P2    | .. |  P1  |
//	 -------- ----------
//	0        4          9    11     14
func GanttChart(w io.Writer, tl model.Timeline) {
	fmt.Fprintln(w, "Gantt chart")
	if len(tl) == 0 {
		fmt.Fprintln(w, "(empty timeline)")
		return
	}

	cells := buildCells(tl)

	var top, mid, bottom, times strings.Builder
	times.WriteString(fmt.Sprint(cells[0].start))
	cursor := len(fmt.Sprint(cells[0].start))

	for _, c := range cells {
		width := 2 * (c.end - c.start)
		if c.idle {
			top.WriteString(strings.Repeat(" ", width+1))
			mid.WriteString(centered("..", width) + " ")
			bottom.WriteString(strings.Repeat(" ", width+1))
		} else {
			top.WriteString(" " + strings.Repeat("-", width))
			mid.WriteString("|" + centered(fmt.Sprintf("P%d", c.pid), width))
			bottom.WriteString(" " + strings.Repeat("-", width))
		}
		// Place the end timestamp under the cell's right edge.
		col := colOf(cells, c.end)
		if pad := col - cursor; pad > 0 {
			times.WriteString(strings.Repeat(" ", pad))
			cursor = col
		}
		stamp := fmt.Sprint(c.end)
		times.WriteString(stamp)
		cursor += len(stamp)
	}
	mid.WriteString("|")

	fmt.Fprintln(w, top.String())
	fmt.Fprintln(w, mid.String())
	fmt.Fprintln(w, bottom.String())
	fmt.Fprintln(w, times.String())
}

type cell struct {
	pid        int
	start, end int
	idle       bool
}

// buildCells interleaves the timeline's slices with explicit idle cells for
// the gaps, starting at time 0.
func buildCells(tl model.Timeline) []cell {
	var cells []cell
	cursor := 0
	for _, s := range tl {
		if s.Start > cursor {
			cells = append(cells, cell{start: cursor, end: s.Start, idle: true})
		}
		cells = append(cells, cell{pid: s.PID, start: s.Start, end: s.End})
		cursor = s.End
	}
	return cells
}

// colOf returns the character column of time t on the chart.
func colOf(cells []cell, t int) int {
	return 1 + 2*(t-cells[0].start)
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
