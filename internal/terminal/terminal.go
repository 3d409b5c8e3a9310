// Package terminal is a line-oriented front end for the screen controller:
// it prints the current view, reads an action choice and, for submitting
// actions, the form fields.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SoyOusa/localcommunitymarketplace/internal/screen"
)

// clearValue typed at a field prompt empties the field
const clearValue = "-"

// App is the part of the screen controller the terminal drives
type App interface {
	View() *screen.View
	Dispatch(actionID string, values screen.Form) error
}

// Run loops until the user quits or input ends
func Run(app App, p Prompter, out io.Writer, logger *slog.Logger) error {
	for {
		v := app.View()
		Render(out, v)
		actions := v.AllActions()

		choice, err := p.ReadLine("\nChoose an action (q to quit): ")
		if err != nil {
			return endOfInput(err)
		}
		choice = strings.TrimSpace(choice)
		if strings.EqualFold(choice, "q") {
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(actions) {
			fmt.Fprintln(out, "Please choose one of the listed actions.")
			continue
		}
		action := actions[n-1]

		var values screen.Form
		if action.Submit {
			values, err = readForm(p, v.Fields)
			if err != nil {
				return endOfInput(err)
			}
		}

		if err := app.Dispatch(action.ID, values); err != nil {
			logger.Debug("🖥️ [Terminal] Action failed", "screen", v.Screen.String(), "action", action.ID, "error", err)
		}
	}
}

func readForm(p Prompter, fields []screen.Field) (screen.Form, error) {
	values := make(screen.Form, len(fields))
	for _, f := range fields {
		prompt := fmt.Sprintf("%s: ", f.Label)
		if f.Value != "" {
			shown := f.Value
			if f.Secret {
				shown = "hidden"
			}
			prompt = fmt.Sprintf("%s [%s]: ", f.Label, shown)
		}

		var answer string
		var err error
		if f.Secret {
			answer, err = p.ReadSecret(prompt)
		} else {
			answer, err = p.ReadLine(prompt)
		}
		if err != nil {
			return nil, err
		}

		switch answer {
		case "":
			values[f.Key] = f.Value
		case clearValue:
			values[f.Key] = ""
		default:
			values[f.Key] = answer
		}
	}
	return values, nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
