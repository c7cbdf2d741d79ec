// Package printers renders trees, item indexes, and series for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/daily/pkg/glyph"
	"tableflip.dev/daily/pkg/history"
	"tableflip.dev/daily/pkg/node"
)

type PrettyPrint struct {
	ShowType bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Tree prints one day's hierarchy, folders before items at every level.
func (pp *PrettyPrint) Tree(root *node.Folder) {
	if len(root.Folders) == 0 && len(root.Items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	pp.printFolder(root, 0)
	fmt.Println("")
}

func (pp *PrettyPrint) printFolder(f *node.Folder, depth int) {
	b := color.New(color.Bold)
	indent := strings.Repeat("  ", depth)
	for _, sub := range f.Folders {
		_, _ = b.Printf("%s%s %s\n", indent, glyph.Folder, sub.Name)
		pp.printFolder(sub, depth+1)
	}
	for _, it := range f.Items {
		pp.printItem(it, indent)
	}
}

func (pp *PrettyPrint) printItem(it *node.Item, indent string) {
	t := color.New()
	v := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	_, _ = t.Printf("%s%s %s", indent, markFor(it), it.Name)
	if it.Type != node.TypeCheck {
		_, _ = v.Printf("  %s", it.Value)
	}
	if pp.ShowType {
		_, _ = y.Printf("  (%s)", it.Type)
	}
	fmt.Println("")
}

// Items prints the chartable index the graphs view selects from.
func (pp *PrettyPrint) Items(infos []history.ItemInfo) {
	if len(infos) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, info := range infos {
		_, _ = t.Printf("%s", info.Path)
		_, _ = y.Printf("  (%s)\n", info.Type)
	}
	fmt.Println("")
}

// Dates prints the stored dates, oldest first, with per-date node counts.
// The two slices line up by index.
func (pp *PrettyPrint) Dates(dates []string, counts []int) {
	if len(dates) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New()
	v := color.New(color.Faint)
	for i, d := range dates {
		_, _ = t.Printf("%s", d)
		if i < len(counts) {
			_, _ = v.Printf("  (%d nodes)", counts[i])
		}
		fmt.Println("")
	}
	fmt.Println("")
}

func markFor(it *node.Item) glyph.Mark {
	switch it.Type {
	case node.TypeCheck:
		if it.Value.Bool() {
			return glyph.Complete
		}
		return glyph.Incomplete
	case node.TypeInt:
		return glyph.Count
	case node.TypeFloat:
		return glyph.Measurement
	default:
		return glyph.Text
	}
}
