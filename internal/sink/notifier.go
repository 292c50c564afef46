package sink

import (
	"fmt"
	"io"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/utils"
)

const (
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiReset  = "\033[0m"
)

// ConsoleNotifier prints one progress line per classified entry.
type ConsoleNotifier struct {
	out   io.Writer
	color bool
}

func NewConsoleNotifier(out io.Writer, color bool) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, color: color}
}

func (n *ConsoleNotifier) Notify(entry model.ResultEntry, total int) {
	prefix := fmt.Sprintf("[%d/%d]", entry.Task.Index, total)
	var line, style string
	switch entry.Classification {
	case model.Funded:
		line = fmt.Sprintf("%s %s", prefix, FormatLine(entry))
		style = ansiGreen
	case model.HistoricalOnly:
		line = fmt.Sprintf("%s %s received %s BTC, now %s BTC", prefix, entry.Task.Address,
			utils.FormatBTC(entry.Record.EverReceivedSatoshi), utils.FormatBTC(entry.Record.CurrentSatoshi))
		style = ansiYellow
	default:
		line = fmt.Sprintf("%s %s => %s BTC (no history)", prefix, entry.Task.Address, utils.FormatBTC(entry.Record.CurrentSatoshi))
	}
	if n.color && style != "" {
		line = style + line + ansiReset
	}
	_, _ = fmt.Fprintln(n.out, line)
}
