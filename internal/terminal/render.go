package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/screen"
)

const width = 72

// Render draws v and numbers its actions in the order AllActions returns
// them.
func Render(w io.Writer, v *screen.View) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, center(v.Title))
	fmt.Fprintln(w, strings.Repeat("=", width))

	if v.Status != "" {
		fmt.Fprintln(w, center(v.Status))
	}
	if v.Notice != "" {
		fmt.Fprintf(w, "* %s\n", v.Notice)
	}
	if v.Error != "" {
		fmt.Fprintf(w, "!! Error: %s\n", v.Error)
	}

	n := 1
	if len(v.Items) == 0 && v.Empty != "" {
		fmt.Fprintf(w, "\n  %s\n", v.Empty)
	}
	for _, item := range v.Items {
		n = renderItem(w, item, n)
	}

	if len(v.Fields) > 0 {
		fmt.Fprintln(w)
		for _, f := range v.Fields {
			fmt.Fprintf(w, "  %s: %s\n", f.Label, displayValue(f))
		}
	}

	fmt.Fprintln(w)
	for _, a := range v.Actions {
		fmt.Fprintf(w, "  [%d] %s\n", n, a.Label)
		n++
	}
}

func renderItem(w io.Writer, item screen.Item, n int) int {
	switch item.Style {
	case screen.StyleCard:
		fmt.Fprintln(w, "  +"+strings.Repeat("-", width-4))
		for _, line := range item.Lines {
			fmt.Fprintf(w, "  | %s\n", line)
		}
	case screen.StyleMine, screen.StyleTheirs:
		marker := "  "
		if item.Style == screen.StyleMine {
			marker = "> "
		}
		for _, line := range item.Lines {
			text := marker + line
			if item.Align == screen.AlignRight {
				text = pad(text)
			}
			fmt.Fprintln(w, text)
		}
	default:
		for _, line := range item.Lines {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	for _, a := range item.Actions {
		fmt.Fprintf(w, "  [%d] %s\n", n, a.Label)
		n++
	}
	return n
}

func displayValue(f screen.Field) string {
	if f.Secret && f.Value != "" {
		return strings.Repeat("*", len(f.Value))
	}
	return f.Value
}

func center(s string) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", (width-len(s))/2) + s
}

// pad right-aligns s within the screen width
func pad(s string) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
