package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daily/pkg/history"
)

const barWidth = 30

// Series prints a date-by-date table for one chartable item, with a bar
// scaled to the largest value in the series.
func (pp *PrettyPrint) Series(path string, points []history.Point) {
	pp.Title(path)
	if len(points) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no data\n\n")
		return
	}

	max := points[0].Value
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("DATE", "VALUE", "")
	for _, p := range points {
		table.AddRow(p.Date, trimFloat(p.Value), bar(p.Value, max))
	}
	fmt.Println(table)
	fmt.Println("")
}

func bar(value, max float64) string {
	if max <= 0 {
		return ""
	}
	n := int(value / max * barWidth)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

const gridWidth = len("11 12 13 14 15 16 17") // an example week

// MonthGrid prints the month containing then as a calendar grid, days with a
// positive reading set bold. Suited to complete/incomplete items.
func (pp *PrettyPrint) MonthGrid(then time.Time, points []history.Point) {
	days := DaysIn(then)
	count := make([]int, days)

	for _, p := range points {
		when, err := time.ParseInLocation("2006-01-02", p.Date, time.Local)
		if err != nil {
			continue
		}
		if when.Year() == then.Year() && when.Month() == then.Month() && p.Value > 0 {
			count[when.Day()-1]++
		}
	}

	pp.printMonthCount(then, count)
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (gridWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", gridWidth-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
