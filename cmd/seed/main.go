// Command seed writes static JSON fixtures (users, cases, evidence) to a data directory.
package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/aiharmwatch/harmwatch/internal/seed"
	"github.com/aiharmwatch/harmwatch/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var seedFlags = seed.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Write fixture users, cases and evidence as JSON files",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSeed,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&seedFlags.DataDir, "data-dir", "d", seedFlags.DataDir, "Directory to write fixture files into")
	f.IntVar(&seedFlags.BcryptCost, "cost", seedFlags.BcryptCost, "bcrypt cost for seeded passwords")
	rootCmd.Version = version.Version
}

func runSeed(cmd *cobra.Command, _ []string) error {
	if seedFlags.BcryptCost < bcrypt.MinCost || seedFlags.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("--cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	summary, err := seed.Run(ctx, seedFlags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Data seeded into %s\n", summary.DataDir)
	fmt.Fprintf(out, "  Users: %d\n", summary.Users)
	fmt.Fprintf(out, "  Cases: %d\n", summary.Cases)
	fmt.Fprintf(out, "  Evidence items: %d\n", summary.Evidence)

	title := cases.Title(language.English)
	for _, category := range slices.Sorted(maps.Keys(summary.Categories)) {
		fmt.Fprintf(out, "    %s: %d\n", title.String(category), summary.Categories[category])
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
