package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/google/subcommands"
)

// importStandardsCmd bulk-loads a JSON file of cut times, one POST per entry.
// The file is an array of objects in the /standards payload shape, e.g.
//
//	[{"stroke":"freestyle","distance":100,"course":"scy","gender":"F",
//	  "age_group":"13-14","standard_name":"NCSA Spring","cut_level":"Qualifying",
//	  "sanctioning_body":"NCSA","time":"54.19","effective_year":2025}]
type importStandardsCmd struct {
	file        string
	ignoreDupes bool
}

func (*importStandardsCmd) Name() string     { return "import" }
func (*importStandardsCmd) Synopsis() string { return "bulk-load time standards from a JSON file" }
func (*importStandardsCmd) Usage() string {
	return "import -file cuts.json [-ignore-dupes]:\n  Load every standard in the file.\n"
}

func (c *importStandardsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON file of standards")
	f.BoolVar(&c.ignoreDupes, "ignore-dupes", false, "skip entries the server rejects as duplicates")
}

func (c *importStandardsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("-file required"))
	}
	raw, err := os.ReadFile(c.file)
	if err != nil {
		return fail(err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fail(fmt.Errorf("%s: %w", c.file, err))
	}

	cl, err := newClient()
	if err != nil {
		return fail(err)
	}

	bar := pb.StartNew(len(entries))
	imported, skipped := 0, 0
	for i, entry := range entries {
		if err := cl.doJSON(ctx, "POST", "/standards", entry, nil); err != nil {
			if c.ignoreDupes {
				skipped++
				bar.Increment()
				continue
			}
			bar.Finish()
			return fail(fmt.Errorf("entry %d: %w", i, err))
		}
		imported++
		bar.Increment()
	}
	bar.Finish()
	fmt.Printf("imported %d standards", imported)
	if skipped > 0 {
		fmt.Printf(", skipped %d", skipped)
	}
	fmt.Println()
	return subcommands.ExitSuccess
}
