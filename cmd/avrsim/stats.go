package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/lookbusy1344/avr-emulator/vm"
)

// writeStats renders an instruction-mix histogram in the config's configured
// format ("json", the default, or "csv"). Mnemonics are written in descending
// execution-count order, ties broken alphabetically, so the output is
// deterministic across runs of the same image.
func writeStats(w io.Writer, format string, stats *vm.InstructionStats) error {
	type entry struct {
		Name  string `json:"name"`
		Count uint64 `json:"count"`
	}
	entries := make([]entry, 0, len(stats.Counts))
	for name, count := range stats.Counts {
		entries = append(entries, entry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})

	switch format {
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"mnemonic", "count"}); err != nil {
			return err
		}
		for _, e := range entries {
			if err := cw.Write([]string{e.Name, fmt.Sprintf("%d", e.Count)}); err != nil {
				return err
			}
		}
		if stats.Unknown > 0 {
			if err := cw.Write([]string{"???", fmt.Sprintf("%d", stats.Unknown)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()

	default: // "json" and anything unrecognized
		out := struct {
			Instructions []entry `json:"instructions"`
			Unknown      uint64  `json:"unknown"`
		}{Instructions: entries, Unknown: stats.Unknown}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
}
