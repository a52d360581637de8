package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/5w1tchy/pwmeter/internal/presenter"
	"github.com/5w1tchy/pwmeter/internal/strength"
)

type report struct {
	Analysis strength.Result   `json:"analysis"`
	UI       presenter.UIState `json:"ui"`
}

func checkCommand(out io.Writer, in io.Reader, args []string, asJSON bool) error {
	if out == nil {
		out = os.Stdout
	}
	if len(args) > 0 {
		for _, pwd := range args {
			if err := writeReport(out, pwd, asJSON); err != nil {
				return err
			}
		}
		return nil
	}

	if in == nil {
		in = os.Stdin
	}
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if err := writeReport(out, strings.TrimSuffix(sc.Text(), "\r"), asJSON); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}

func writeReport(w io.Writer, pwd string, asJSON bool) error {
	res := strength.Analyze(pwd)
	st := presenter.Present(res)

	if asJSON {
		return json.NewEncoder(w).Encode(report{Analysis: res, UI: st})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s  [%s]  %s  %s\n", st.Label, st.Emoji, bar(st.BarWidth), st.EntropyText, st.LengthText)
	for _, s := range st.Suggestions {
		fmt.Fprintf(&sb, "  - %s\n", s)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// bar draws width percent as a 20-cell text gauge.
func bar(width int) string {
	filled := width / 5
	return strings.Repeat("#", filled) + strings.Repeat(".", 20-filled)
}
