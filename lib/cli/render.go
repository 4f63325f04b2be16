package cli

import (
	"fmt"
	"github.com/germanoeich/tweet-date/lib/datefmt"
	"github.com/germanoeich/tweet-date/lib/session"
	"github.com/germanoeich/tweet-date/lib/snowflake"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"io"
	"strconv"
	"time"
)

const (
	Title         = "Twitter Date Checker"
	Subtitle      = "Descubre la fecha exacta de publicación de cualquier tweet"
	InputLabel    = "URL o ID del Tweet"
	InputHint     = "Pega la URL completa o solo el ID numérico del tweet"
	ResultHeading = "FECHA DE PUBLICACIÓN"
	Footer        = "Los IDs de Twitter usan codificación Snowflake de 64 bits"
	NoHistory     = "Todavía no hay consultas"
)

func RenderBanner(out io.Writer) {
	fmt.Fprintf(out, "%s\n%s\n%s\n\n", text.Bold.Sprint(Title), Subtitle, text.Faint.Sprint(Footer))
	fmt.Fprintf(out, "%s (%s)\n", InputHint, CmdHelp)
}

// RenderState prints whichever of Error and Result is set, nothing otherwise
func RenderState(out io.Writer, state session.State) {
	if state.Error != "" {
		fmt.Fprintln(out, text.FgRed.Sprint(state.Error))
		return
	}
	if state.Result != "" {
		fmt.Fprintf(out, "%s\n%s\n", text.Faint.Sprint(ResultHeading), text.Bold.Sprint(state.Result))
	}
}

func RenderHistory(out io.Writer, lookups []session.Lookup) {
	if len(lookups) == 0 {
		fmt.Fprintln(out, NoHistory)
		return
	}
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", ResultHeading})
	for i, l := range lookups {
		t.AppendRow(table.Row{i + 1, l.ID, l.Result})
	}
	fmt.Fprintf(out, "%s\n", t.Render())
}

func RenderComponents(out io.Writer, c snowflake.Components, f *datefmt.Formatter) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendRows([]table.Row{
		{"ID", strconv.FormatUint(c.ID, 10)},
		{ResultHeading, f.Format(c.CreatedAt)},
		{"UTC", c.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00")},
		{"Unix (ms)", c.CreatedAt.UnixMilli()},
		{"Desde el epoch (ms)", c.Elapsed},
		{"Máquina", c.Machine},
		{"Secuencia", c.Sequence},
		{"Antigüedad", time.Since(c.CreatedAt).Round(time.Second).String()},
	})
	fmt.Fprintf(out, "%s\n", t.Render())
}
