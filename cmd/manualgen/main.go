package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docfold/manualgen/internal/app"
	"github.com/docfold/manualgen/internal/config"
	"github.com/docfold/manualgen/internal/domain"
	"github.com/docfold/manualgen/internal/source"
	"github.com/docfold/manualgen/internal/utils"
	"github.com/docfold/manualgen/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manualgen [source]",
	Short: "Assemble a documentation manual from a section/item tree",
	Long: `Manualgen assembles a single manual document from an on-disk tree:
one subdirectory per section, one file per manual entry. Filename stems
encode each entry's classification (S/T for tools, X for textures) and
its display name.

The source argument is a local directory (default docs/manual) or a git
repository URL to clone the tree from.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.manualgen/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Manual flags
	rootCmd.PersistentFlags().String("title", config.DefaultTitle, "Manual title")
	rootCmd.PersistentFlags().String("start-text", "", "Literal text prepended to the output instead of the format preamble")
	rootCmd.PersistentFlags().Bool("decode-item-names", false, "Apply section name decoding to item names too")

	// Output flags
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file (default manual.<ext>, - for stdout)")
	rootCmd.PersistentFlags().StringP("format", "f", config.DefaultFormat, "Output format: html, markdown, text")
	rootCmd.PersistentFlags().Bool("manifest", false, "Also write a structure manifest")
	rootCmd.PersistentFlags().String("manifest-path", "", "Manifest file (default manual.manifest.<fmt>)")
	rootCmd.PersistentFlags().String("manifest-format", config.DefaultManifestFormat, "Manifest encoding: yaml or json")
	rootCmd.PersistentFlags().Bool("force", false, "Overwrite existing output files")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Assemble without writing files")
	rootCmd.PersistentFlags().Bool("progress", false, "Show a per-section progress bar")

	// Git source flags
	rootCmd.PersistentFlags().String("git-ref", "", "Branch or tag to clone")
	rootCmd.PersistentFlags().String("git-subdir", "", "Manual root inside the cloned repository")

	// Bind flags to viper
	_ = viper.BindPFlag("manual.title", rootCmd.PersistentFlags().Lookup("title"))
	_ = viper.BindPFlag("manual.start_text", rootCmd.PersistentFlags().Lookup("start-text"))
	_ = viper.BindPFlag("manual.decode_item_names", rootCmd.PersistentFlags().Lookup("decode-item-names"))
	_ = viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("output.manifest", rootCmd.PersistentFlags().Lookup("manifest"))
	_ = viper.BindPFlag("output.manifest_path", rootCmd.PersistentFlags().Lookup("manifest-path"))
	_ = viper.BindPFlag("output.manifest_format", rootCmd.PersistentFlags().Lookup("manifest-format"))
	_ = viper.BindPFlag("output.force", rootCmd.PersistentFlags().Lookup("force"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("output.progress", rootCmd.PersistentFlags().Lookup("progress"))
	_ = viper.BindPFlag("git.ref", rootCmd.PersistentFlags().Lookup("git-ref"))
	_ = viper.BindPFlag("git.subdir", rootCmd.PersistentFlags().Lookup("git-subdir"))

	// Add subcommands
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log = newLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	src := resolveSource(cfg, args)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown during git clone
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	orchestrator := app.NewOrchestrator(cfg, log)
	result, err := orchestrator.Run(ctx, src)
	if err != nil {
		return err
	}

	if result.OutputPath != "-" {
		fmt.Printf("Wrote %s (%d sections, %d items)\n",
			result.OutputPath, result.Sections, result.Items)
		if result.ManifestPath != "" {
			fmt.Printf("Wrote %s\n", result.ManifestPath)
		}
	}
	return nil
}

// resolveSource picks the manual source from the positional argument:
// a git URL clones, anything else is a local directory
func resolveSource(cfg *config.Config, args []string) domain.Source {
	if len(args) == 0 {
		return source.NewLocal(cfg.Manual.Root)
	}

	arg := args[0]
	if source.IsGitURL(arg) {
		return source.NewGit(source.GitOptions{
			URL:    arg,
			Ref:    cfg.Git.Ref,
			Subdir: cfg.Git.Subdir,
			Logger: log,
		})
	}
	return source.NewLocal(arg)
}

func newLogger() *utils.Logger {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [source-dir]",
	Short: "Check a manual source tree for defects",
	Long: `Doctor validates a manual tree ahead of assembly: every section must
be a readable directory with a decodable name, and every item a file
with a decodable stem. The assembler treats these defects as fatal;
doctor reports them all instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		root := cfg.Manual.Root
		if len(args) > 0 {
			root = args[0]
		}

		report, err := app.RunDoctor(root, log)
		if err != nil {
			return err
		}

		fmt.Printf("Checked %s: %d sections, %d items\n", report.Root, report.Sections, report.Items)

		kinds := make([]string, 0, len(report.Kinds))
		for kind := range report.Kinds {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("  %s: %d\n", kind, report.Kinds[kind])
		}

		if !report.OK() {
			fmt.Printf("\n%d problem(s):\n", len(report.Problems))
			for _, problem := range report.Problems {
				fmt.Printf("  - %s\n", problem)
			}
			return fmt.Errorf("manual tree has %d problem(s)", len(report.Problems))
		}

		fmt.Println("\nManual tree looks good.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
