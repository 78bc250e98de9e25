package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"phishguard/analyzer"
)

var (
	checkOffline bool
	checkWhois   bool
	checkJSON    bool

	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Analyze a single URL from the command line",
	Args:  cobra.ExactArgs(1),
	Run:   runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkOffline, "offline", false, "skip the global threat database lookup")
	checkCmd.Flags().BoolVar(&checkWhois, "whois", false, "include WHOIS registration info")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit the API response shape as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	raw := strings.TrimSpace(args[0])
	if raw == "" || !analyzer.Validate(raw) {
		fmt.Fprintln(os.Stderr, red("invalid URL:"), args[0])
		os.Exit(3)
	}

	cfg := analyzer.LoadConfig()
	scoring := analyzer.DefaultScoringConfig()
	normalized := analyzer.Normalize(raw)

	result := analyzer.Analyze(analyzer.Parse(normalized), normalized, scoring)

	if !checkOffline {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FeedTimeout)
		defer cancel()
		feed := analyzer.NewThreatFeed(cfg.FeedURL, cfg.FeedTimeout)
		result = analyzer.MergeThreatVerdict(result, feed.Check(ctx, normalized), scoring)
	}

	if checkJSON {
		out, _ := json.MarshalIndent(analyzer.AnalyzeResponse{
			Status:      "ok",
			Verdict:     result.Verdict,
			SafetyScore: result.SafetyScore,
			RiskScore:   result.RiskScore,
			Checks:      result.Checks,
			Timestamp:   time.Now().Format(time.RFC3339),
		}, "", "  ")
		fmt.Println(string(out))
	} else {
		printReport(normalized, result)
		if checkWhois {
			printWhois(analyzer.Parse(normalized).Hostname)
		}
	}

	switch result.Verdict {
	case analyzer.VerdictSafe:
	case analyzer.VerdictRisky:
		os.Exit(1)
	default:
		os.Exit(2)
	}
}

func printReport(target string, res analyzer.AnalysisResult) {
	fmt.Println(cyan(target))
	for _, c := range res.Checks {
		mark := green("PASS")
		switch c.Status {
		case analyzer.StatusWarn:
			mark = yellow("WARN")
		case analyzer.StatusFail:
			mark = red("FAIL")
		}
		fmt.Printf("  [%s] %-22s %s\n", mark, c.Name, c.Description)
	}

	verdict := string(res.Verdict)
	switch res.Verdict {
	case analyzer.VerdictSafe:
		verdict = green(verdict)
	case analyzer.VerdictRisky:
		verdict = yellow(verdict)
	default:
		verdict = red(verdict)
	}
	fmt.Printf("\nSafety score: %d/100 (risk %d), verdict: %s\n", res.SafetyScore, res.RiskScore, verdict)
}

func printWhois(domain string) {
	info, err := analyzer.LookupDomainInfo(domain)
	if err != nil {
		fmt.Fprintln(os.Stderr, yellow("WHOIS lookup failed:"), err)
		return
	}

	fmt.Println("\nRegistration:")
	if info.Registrar != "" {
		fmt.Printf("  Registrar: %s\n", info.Registrar)
	}
	if !info.Created.IsZero() {
		fmt.Printf("  Created:   %s (%d days ago)\n", info.Created.Format("02/01/2006"), info.AgeDays)
	}
	if !info.Expires.IsZero() {
		fmt.Printf("  Expires:   %s\n", info.Expires.Format("02/01/2006"))
	}
}
