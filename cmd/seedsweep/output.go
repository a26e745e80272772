package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"

	"github.com/rolf/seedsweep/pkg/collision"
)

const (
	outputPlain = "plain"
	outputTable = "table"
	outputJSON  = "json"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeReport(w io.Writer, r *collision.Report, format string) error {
	switch format {
	case outputPlain:
		return writePlain(w, r)
	case outputTable:
		return writeTable(w, r)
	case outputJSON:
		return writeJSON(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writePlain prints one colliding value per line.
func writePlain(w io.Writer, r *collision.Report) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.Seeds() {
		bw.WriteString(strconv.FormatUint(s, 10))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeTable(w io.Writer, r *collision.Report) error {
	var occurrences uint64
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"seed", "count"})
	for _, c := range r.Collisions {
		t.AppendRow(table.Row{c.Seed, c.Count})
		occurrences += uint64(c.Count)
	}
	t.AppendFooter(table.Row{humanize.Comma(int64(len(r.Collisions))), humanize.Comma(int64(occurrences))})
	t.SetCaption("%s mod %d: %s seeds, %s distinct, %.2f colliding values expected",
		r.Algorithm, r.Modulus,
		humanize.Comma(int64(r.Generated)),
		humanize.Comma(int64(r.Distinct)),
		r.Expected)
	t.Render()
	return nil
}

func writeJSON(w io.Writer, r *collision.Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
