package help

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"herald/pkg/command"
	heraldstrings "herald/pkg/strings"
)

// RenderCommandList writes a table of every command with its signature.
func RenderCommandList(w io.Writer, cmds []*command.Command) {
	if len(cmds) == 0 {
		fmt.Fprintf(w, "%s\n", text.FgYellow.Sprint("No commands registered"))
		return
	}

	t := createTable(w)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("COMMAND"),
		text.FgHiCyan.Sprint("SIGNATURE"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})
	for _, cmd := range cmds {
		t.AppendRow(table.Row{cmd.FullName(), Signature(cmd), describe(cmd.Description)})
	}
	t.Render()
}

// RenderCommand writes the detail view of one command: its signature, each
// argument with its description, and each flag with its markers.
func RenderCommand(w io.Writer, cmd *command.Command) {
	fmt.Fprintf(w, "%s %s\n", text.FgHiWhite.Sprint(cmd.FullName()), Signature(cmd))
	if cmd.Description != "" {
		fmt.Fprintf(w, "%s\n", cmd.Description)
	}
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases: %s\n", strings.Join(cmd.Aliases, ", "))
	}

	if len(cmd.Components) > 0 {
		t := createTable(w)
		t.AppendHeader(table.Row{
			text.FgHiCyan.Sprint("ARGUMENT"),
			text.FgHiCyan.Sprint("REQUIRED"),
			text.FgHiCyan.Sprint("DESCRIPTION"),
		})
		for _, comp := range cmd.Components {
			required := "yes"
			if !comp.Required {
				required = "no"
				if comp.Default != "" {
					required = fmt.Sprintf("no (default %s)", comp.Default)
				}
			}
			t.AppendRow(table.Row{comp.Name, required, describe(comp.Description)})
		}
		t.Render()
	}

	if len(cmd.Flags) > 0 {
		t := createTable(w)
		t.AppendHeader(table.Row{
			text.FgHiCyan.Sprint("FLAG"),
			text.FgHiCyan.Sprint("VALUE"),
			text.FgHiCyan.Sprint("DESCRIPTION"),
		})
		for _, f := range cmd.Flags {
			value := ""
			if f.Component != nil {
				value = "<value>"
			}
			t.AppendRow(table.Row{flagMarkers(f), value, describe(f.Description)})
		}
		t.Render()
	}
}

// Signature renders a command's argument and flag shape, e.g.
// "<player> [days] [--silent] [--reason <value>]".
func Signature(cmd *command.Command) string {
	var parts []string
	for _, comp := range cmd.Components {
		if comp.Required {
			parts = append(parts, "<"+comp.Name+">")
		} else {
			parts = append(parts, "["+comp.Name+"]")
		}
	}
	for _, f := range cmd.Flags {
		if f.Component != nil {
			parts = append(parts, "[--"+f.Name+" <value>]")
		} else {
			parts = append(parts, "[--"+f.Name+"]")
		}
	}
	return strings.Join(parts, " ")
}

// describe flattens and truncates a description for a single table cell.
func describe(s string) string {
	return heraldstrings.TruncateDescription(s, heraldstrings.DefaultDescriptionMaxLen)
}

func flagMarkers(f *command.Flag) string {
	markers := []string{"--" + f.Name}
	for _, a := range f.Aliases {
		markers = append(markers, "-"+a)
	}
	return strings.Join(markers, ", ")
}

// createTable creates a new table with standard styling.
func createTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}
