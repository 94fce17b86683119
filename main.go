package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"stalens/internal/config"
	"stalens/internal/fetch"
	"stalens/internal/model"
	"stalens/internal/timing"
	"stalens/internal/tui"
	"stalens/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "stalens",
		Repository: "stalens",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/stalens/stalens/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stalens [options] [report-file]\n\n")
		fmt.Fprintf(os.Stderr, "stalens gives a heuristic summary of a static-timing path report:\n")
		fmt.Fprintf(os.Stderr, "setup violation status, slack, path endpoints, logic depth, and\n")
		fmt.Fprintf(os.Stderr, "canned remediation suggestions from pattern matching.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stalens path1.rpt          # Analyze a report file in the TUI\n")
		fmt.Fprintf(os.Stderr, "  stalens                    # TUI with the built-in example report\n")
		fmt.Fprintf(os.Stderr, "  stalens -r path1.rpt       # Print diagnostic report to stdout\n")
		fmt.Fprintf(os.Stderr, "  cat path1.rpt | stalens -r -   # Analyze stdin\n")
		fmt.Fprintf(os.Stderr, "  stalens --json path1.rpt   # Output analysis as JSON\n")
		fmt.Fprintf(os.Stderr, "  stalens -r -f chips/t1/timing/path1.rpt  # Fetch from the report server\n")
		fmt.Fprintf(os.Stderr, "  stalens --web              # Web UI on http://localhost:8080\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output raw analysis data as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Generate a plain-text diagnostic report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include remediation suggestions in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode (default http://localhost:8080)")
	fetchFlag := pflag.BoolP("fetch", "f", false, "Treat the argument as a path/URL on the report server")
	configFlag := pflag.StringP("config", "c", "", "Config file (default: OS config dir, stalens/config.toml)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("stalens version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if *webFlag {
		web.NewServer(cfg).Start()
		return
	}

	arg := pflag.Arg(0)

	if *reportFlag || *jsonFlag || *fetchFlag {
		raw := loadReportText(cfg, arg, *fetchFlag)
		result := timing.NewAnalyzer().Analyze(raw)

		if *jsonFlag {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(result)
			return
		}

		report := timing.GenerateReport(result, *verboseFlag)
		if *outputFlag != "" {
			if err := os.WriteFile(*outputFlag, []byte(report), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", *outputFlag, err)
				os.Exit(1)
			}
			fmt.Printf("Report saved to %s\n", *outputFlag)
		} else {
			fmt.Println(report)
		}
		return
	}

	// Default: TUI
	runTuiMode(arg)
}

// loadReportText resolves the report source: upstream fetch (with sample
// fallback), stdin, a local file, or the built-in example when no argument
// was given.
func loadReportText(cfg config.Config, arg string, useFetch bool) string {
	if useFetch {
		if arg == "" {
			fmt.Fprintln(os.Stderr, "Error: --fetch requires a report path or URL")
			os.Exit(1)
		}
		fetcher := fetch.New(cfg.Upstream)
		text, ok := fetcher.FetchOrSample(context.Background(), arg)
		if !ok {
			fmt.Fprintln(os.Stderr, "Warning: upstream fetch failed, analyzing built-in sample data")
		}
		return text
	}

	switch arg {
	case "":
		return model.SampleReport
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		return string(data)
	default:
		data, err := os.ReadFile(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", arg, err)
			os.Exit(1)
		}
		return string(data)
	}
}

func runTuiMode(sourcePath string) {
	m := tui.InitialModel(sourcePath)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
