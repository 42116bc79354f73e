package main

import (
	"fmt"
	"os"

	"github.com/hepio/truthcaf/lib/cafio"
	"github.com/hepio/truthcaf/lib/check"
	"github.com/hepio/truthcaf/lib/columns"
	"github.com/hepio/truthcaf/lib/error"
	"github.com/hepio/truthcaf/lib/stats"
)

func main() {
	if len(os.Args) < 2 {
		PrintHelp()
		return
	}

	mode := os.Args[1]
	switch mode {
	case "help":
		PrintHelp()
	case "inspect":
		Inspect(fileArg(mode))
	case "check":
		Check(fileArg(mode))
	case "stats":
		Stats(fileArg(mode))
	default:
		error.External(
			"You attempted to run truthcaf in the mode '%s', but the only "+
				"valid modes are 'help', 'inspect', 'check', and 'stats'.",
			mode,
		)
	}
}

// fileArg returns the file name argument of a mode, reporting an error if
// the user didn't supply one.
func fileArg(mode string) string {
	if len(os.Args) < 3 {
		error.External("The '%s' mode requires the name of a truth file: "+
			"truthcaf %s <file>.", mode, mode)
	}
	return os.Args[2]
}

// PrintHelp prints usage information.
func PrintHelp() {
	fmt.Println(`truthcaf reads columnar truth-interaction files.

Usage:
    truthcaf help             Print this message.
    truthcaf inspect <file>   Print the file's header and column table.
    truthcaf check <file>     Run consistency checks over every record.
    truthcaf stats <file>     Summarize the file's float columns.`)
}

// Inspect runs truthcaf's "inspect" mode, which prints a file's header and
// the name and type of every column it contains.
func Inspect(fname string) {
	rd, err := cafio.NewReader(fname)
	if err != nil {
		error.External("%s", err.Error())
	}
	defer rd.Close()

	fmt.Printf("%s: format version <= %d, %v byte order\n",
		fname, cafio.Version, rd.ByteOrder())
	fmt.Printf("%d records, %d daughter particles\n", rd.N, rd.NPrim)
	fmt.Printf("%d columns:\n", len(rd.Names))
	for i := range rd.Names {
		fmt.Printf("    %-20s %s\n", rd.Names[i], rd.Types[i])
	}
}

// Check runs truthcaf's "check" mode, which tests every record in a file for
// consistency problems a well-behaved producer should not have written.
func Check(fname string) {
	recs, err := cafio.ReadFile(fname)
	if err != nil {
		error.External("%s", err.Error())
	}

	probs := check.Records(recs)
	for i := range probs {
		fmt.Println(probs[i])
	}
	if len(probs) > 0 {
		error.External("%d of the %d records in %s failed consistency "+
			"checks.", len(probs), len(recs), fname)
	}
	fmt.Println("No errors detected.")
}

// Stats runs truthcaf's "stats" mode, which prints a sentinel-aware summary
// of every float column in a file.
func Stats(fname string) {
	rd, err := cafio.NewReader(fname)
	if err != nil {
		error.External("%s", err.Error())
	}
	defer rd.Close()

	fmt.Printf("%-20s %8s %8s %5s %12s %12s %12s %12s\n",
		"column", "set", "sentinel", "bad", "mean", "std", "min", "max")
	for i := range rd.Names {
		if rd.Types[i] != columns.Float32Code {
			continue
		}

		col, err := rd.ReadColumn(rd.Names[i])
		if err != nil {
			error.External("%s", err.Error())
		}
		xs, ok := col.Data().([]float32)
		if !ok {
			error.Internal("The column '%s' has type code '%s', but its "+
				"data is not []float32.", rd.Names[i], rd.Types[i])
		}

		s := stats.Summarize(rd.Names[i], xs)
		fmt.Printf("%-20s %8d %8d %5d %12.5g %12.5g %12.5g %12.5g\n",
			s.Name, s.NSet, s.NSentinel, s.NBad, s.Mean, s.Std, s.Min, s.Max)
	}
}
