package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/cnsr-locator/internal/config"
	"github.com/handiism/cnsr-locator/internal/dataset"
	"github.com/handiism/cnsr-locator/internal/scan"
)

type ExitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// withExitCode maps locator errors to distinct exit codes for scripts.
func withExitCode(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, dataset.ErrMissingDirectory):
		return &exitError{code: 2, err: err}
	case errors.Is(err, dataset.ErrIncompleteData):
		return &exitError{code: 3, err: err}
	}
	return err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var ex ExitCoder
		if errors.As(err, &ex) {
			os.Exit(ex.ExitCode())
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	root       string
	kind       string
	jsonOutput bool
	verbose    bool
}

// settings loads the config file and applies flag overrides.
func (o *options) settings() (*config.Settings, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.root != "" {
		settings.DataRoot = o.root
	}
	if o.kind != "" {
		settings.DefaultKind = o.kind
	}
	return settings, nil
}

func (o *options) locator(participant string) (*dataset.Locator, error) {
	settings, err := o.settings()
	if err != nil {
		return nil, err
	}
	kind, err := settings.Kind()
	if err != nil {
		return nil, err
	}
	return dataset.New(kind, settings.DataRoot, participant)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "cnsr-locate",
		Short:         "Locate per-participant CNSR recording files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to settings file")
	cmd.PersistentFlags().StringVar(&opts.root, "root", "", "data root directory (overrides config)")
	cmd.PersistentFlags().StringVarP(&opts.kind, "kind", "k", "", "dataset kind: EDA, ERN, FAA or HRV")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "show verbose output")

	cmd.AddCommand(newParticipantsCmd(opts))
	cmd.AddCommand(newPathsCmd(opts))
	cmd.AddCommand(newScanCmd(opts))
	cmd.AddCommand(newKindsCmd(opts))

	return cmd
}

func newParticipantsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "participants",
		Aliases: []string{"ls"},
		Short:   "List participants with a complete file set",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.locator("")
			if err != nil {
				return withExitCode(err)
			}
			participants, err := loc.FindParticipants()
			if err != nil {
				return withExitCode(err)
			}
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), participants)
			}
			for _, p := range participants {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func newPathsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "paths <participant>",
		Short: "Print the files of one participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.locator(args[0])
			if err != nil {
				return withExitCode(err)
			}
			paths, err := loc.Paths()
			if err != nil {
				return withExitCode(err)
			}
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), paths)
			}

			exts := make([]string, 0, len(paths))
			for ext := range paths {
				exts = append(exts, ext)
			}
			sort.Strings(exts)
			for _, ext := range exts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", ext, paths[ext])
			}
			return nil
		},
	}
}

func newScanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Survey the data root for all configured dataset kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.settings()
			if err != nil {
				return err
			}
			kinds, err := settings.Kinds()
			if err != nil {
				return err
			}
			if opts.kind != "" {
				k, err := settings.Kind()
				if err != nil {
					return err
				}
				kinds = []dataset.Kind{k}
			}

			errOut := cmd.ErrOrStderr()
			scanner := scan.NewScanner(kinds, func(event scan.ProgressEvent) {
				if event.Level == scan.LevelVerbose && !opts.verbose {
					return
				}
				prefix := "   "
				switch event.Level {
				case scan.LevelError:
					prefix = "✗  "
				case scan.LevelWarning:
					prefix = "!  "
				case scan.LevelSuccess:
					prefix = "✓  "
				case scan.LevelInfo:
					prefix = "›  "
				}
				fmt.Fprintln(errOut, prefix+event.Message)
			})

			reports, err := scanner.Scan(cmd.Context(), settings.DataRoot)
			if err != nil {
				return withExitCode(err)
			}
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), reports)
			}
			for _, r := range reports {
				list := strings.Join(r.Participants, " ")
				if list == "" {
					list = "-"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", r.Kind, len(r.Participants), list)
			}
			return nil
		},
	}
}

func newKindsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "Show the filename convention of each dataset kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			type kindInfo struct {
				Name       string   `json:"name"`
				Glob       string   `json:"glob"`
				Extensions []string `json:"extensions"`
			}
			var infos []kindInfo
			for _, k := range dataset.Kinds() {
				infos = append(infos, kindInfo{Name: k.Name, Glob: k.Glob(), Extensions: k.Extensions()})
			}
			if opts.jsonOutput {
				return printJSON(cmd.OutOrStdout(), infos)
			}
			for _, k := range infos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", k.Name, k.Glob, strings.Join(k.Extensions, ","))
			}
			return nil
		},
	}
}

func printJSON(w io.Writer, payload any) error {
	blob, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(blob))
	return err
}
