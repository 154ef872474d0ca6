package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/stampcalc/stampcalc/internal/calculation"
	"github.com/stampcalc/stampcalc/internal/compare"
	"github.com/stampcalc/stampcalc/internal/config"
	"github.com/stampcalc/stampcalc/internal/domain"
	"github.com/stampcalc/stampcalc/internal/output"
	"github.com/stampcalc/stampcalc/internal/progress"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stampcalc",
	Short: "Property purchase cost estimator",
	Long:  "Estimates transfer duty, concessions, grants and total upfront costs for Australian property purchases",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [snapshot-file]",
	Short: "Calculate upfront costs for a saved session snapshot",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snapshot := loadSnapshot(args[0])

		engine := calculation.NewEngine()
		breakdown, err := engine.Breakdown(snapshot.Profile, snapshot.Position)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		formatter, err := output.NewFormatter(format)
		if err != nil {
			log.Fatal(err)
		}
		report, err := formatter.Format(breakdown)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stdout, report)
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress [snapshot-file]",
	Short: "Show how much of the question path a session has completed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snapshot := loadSnapshot(args[0])
		report := progress.Track(snapshot.Profile, snapshot.Position)
		fmt.Fprint(os.Stdout, output.FormatProgress(report))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [snapshot-file]",
	Short: "Compare upfront costs across all states and territories",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		snapshot := loadSnapshot(args[0])

		engine := compare.NewEngine(calculation.NewEngine())
		set, err := engine.Compare(snapshot.Profile, snapshot.Position)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "console", "":
			tf := &compare.TableFormatter{}
			fmt.Fprint(os.Stdout, tf.Format(set))
		case "csv":
			cf := &compare.CSVFormatter{}
			out, err := cf.Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprint(os.Stdout, out)
		case "json":
			data, err := json.MarshalIndent(set, "", "  ")
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(os.Stdout, string(data))
		default:
			log.Fatalf("unsupported format: %s", format)
		}
	},
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List supported states and territories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, r := range domain.AllRegions() {
			fmt.Fprintf(os.Stdout, "%-4s %s\n", r, r.FullName())
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "stampcalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

func loadSnapshot(path string) *config.Snapshot {
	parser := config.NewInputParser()
	snapshot, err := parser.LoadFromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	return snapshot
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	compareCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
