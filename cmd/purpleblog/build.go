package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/purpleblog/internal/config"
	"github.com/taigrr/purpleblog/internal/logging"
	"github.com/taigrr/purpleblog/internal/site"
	"github.com/taigrr/purpleblog/internal/types"
)

// buildOptions collects the flags shared by the build and serve commands.
type buildOptions struct {
	flags      config.Config
	configPath string
	verbose    bool
}

func addBuildFlags(cmd *cobra.Command, opts *buildOptions) {
	f := cmd.Flags()
	f.StringVarP(&opts.flags.InputDir, "input", "i", "", "directory containing one folder per post")
	f.StringVarP(&opts.flags.OutputDir, "output", "o", "", "directory the site is written to")
	f.StringVarP(&opts.flags.BlogName, "name", "n", "", "blog name, available to templates as {{blogname}}")
	f.StringVarP(&opts.flags.BlogDescription, "desc", "d", "", "blog description, available to the index template as {{blogdesc}}")
	f.StringVar(&opts.flags.IndexTemplatePath, "index-template", "", "index page template file (legacy form: -it=FILE)")
	f.StringVar(&opts.flags.PostTemplatePath, "post-template", "", "post page template file (legacy form: -pt=FILE)")
	f.StringVar(&opts.flags.Stylesheet, "stylesheet", "", "stylesheet URL, available to templates as {{stylesheet}}")
	f.StringSliceVar(&opts.flags.Ignore, "ignore", nil, "additional post folder patterns to skip")
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file; flags override its values")
	f.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
}

// resolve merges the config file with the flags on top.
func (o *buildOptions) resolve() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	return cfg.Merge(o.flags), nil
}

func newBuildCommand() *cobra.Command {
	opts := &buildOptions{}
	cmd := &cobra.Command{
		Use:          "build",
		Short:        "Generate the site (default command)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, opts)
		},
	}
	addBuildFlags(cmd, opts)
	return cmd
}

func runBuild(cmd *cobra.Command, opts *buildOptions) error {
	printBanner(cmd.OutOrStdout())
	logger := logging.New(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := opts.resolve()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		_ = cmd.Usage()
		return err
	}

	templates := cfg.LoadTemplates(logger)
	report, err := site.New(cfg, templates, logger).Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	logSummary(logger, report)
	return nil
}

func logSummary(logger *log.Logger, report types.BuildReport) {
	if failed := report.Failed(); len(failed) > 0 {
		logger.Warn("build finished with errors", "posts", len(report.Results), "listed", len(report.Posts), "failed", len(failed))
		return
	}
	logger.Info("build finished", "posts", len(report.Results), "listed", len(report.Posts))
}
