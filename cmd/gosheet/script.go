package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cerque1/go-spreadsheet/packages/position"
	"github.com/cerque1/go-spreadsheet/packages/spreadsheet"
)

// runScript reads the command grammar line by line from src, applying
// each command to sheet and writing GET/PRINT/SIZE output to out. A
// command that fails is logged and the remaining script still runs,
// matching the policy that these are caller-visible, per-call failures
// rather than fatal ones.
func runScript(sheet *spreadsheet.Sheet, src io.Reader, out io.Writer, log *zap.Logger) error {
	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := execLine(sheet, line, out); err != nil {
			log.Warn("command failed", zap.Int("line", lineNo), zap.String("text", line), zap.Error(err))
		}
	}
	return scanner.Err()
}

func execLine(sheet *spreadsheet.Sheet, line string, out io.Writer) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd := strings.ToUpper(fields[0])

	switch cmd {
	case "SET":
		if len(fields) < 2 {
			return fmt.Errorf("SET requires an address")
		}
		pos, err := position.Parse(fields[1])
		if err != nil {
			return err
		}
		text := ""
		if idx := strings.Index(line, fields[1]); idx >= 0 {
			rest := line[idx+len(fields[1]):]
			text = strings.TrimSpace(rest)
		}
		return sheet.SetCell(pos, text)
	case "CLEAR":
		if len(fields) != 2 {
			return fmt.Errorf("CLEAR requires exactly one address")
		}
		pos, err := position.Parse(fields[1])
		if err != nil {
			return err
		}
		return sheet.ClearCell(pos)
	case "GET":
		if len(fields) != 2 {
			return fmt.Errorf("GET requires exactly one address")
		}
		pos, err := position.Parse(fields[1])
		if err != nil {
			return err
		}
		value, err := sheet.GetValue(pos)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, renderGet(value))
		return nil
	case "PRINT":
		if len(fields) != 2 {
			return fmt.Errorf("PRINT requires VALUES or TEXT")
		}
		switch strings.ToUpper(fields[1]) {
		case "VALUES":
			return sheet.PrintValues(out)
		case "TEXT":
			return sheet.PrintTexts(out)
		default:
			return fmt.Errorf("PRINT %s is not a recognized mode", fields[1])
		}
	case "SIZE":
		size := sheet.GetPrintableSize()
		fmt.Fprintf(out, "%d\t%d\n", size.Rows, size.Cols)
		return nil
	default:
		return fmt.Errorf("unrecognized command %q", fields[0])
	}
}

func renderGet(r spreadsheet.Rendered) string {
	switch r.Kind {
	case spreadsheet.RenderedNumber:
		return strconv.FormatFloat(r.Number, 'f', -1, 64)
	case spreadsheet.RenderedText:
		return r.Text
	case spreadsheet.RenderedError:
		return r.Err.String()
	}
	return ""
}
