package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeanhaley32/osinfo"
	"github.com/jeanhaley32/osinfo/internal/constants"
	"github.com/jeanhaley32/osinfo/internal/render"
	"github.com/jeanhaley32/osinfo/internal/terminal"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "osinfo",
		Short:         "Report the running operating system",
		Long:          "Report the operating system kind, distribution or edition name, and version.",
		Args:          cobra.NoArgs,
		RunE:          runShow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("format", "f", envOr(constants.FormatEnvVar, string(render.Text)),
		"Output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().String("os-release", envOr(constants.OSReleaseEnvVar, constants.OSReleasePath),
		"Path of the os-release file (Linux only)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log unavailable data sources to stderr")

	rootCmd.AddCommand(
		newKindCmd(),
		newDecodeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func newLogger(cmd *cobra.Command) (*logrus.Logger, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("invalid verbose flag: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger, nil
}

func newProvider(cmd *cobra.Command) (osinfo.Provider, error) {
	osRelease, err := cmd.Flags().GetString("os-release")
	if err != nil {
		return nil, fmt.Errorf("invalid os-release flag: %w", err)
	}
	logger, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}
	return osinfo.New(
		osinfo.WithOSReleasePath(osRelease),
		osinfo.WithLogger(logger),
	)
}

func outputFormat(cmd *cobra.Command) (render.Format, error) {
	raw, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("invalid format flag: %w", err)
	}
	return render.ParseFormat(raw)
}

func write(cmd *cobra.Command, info osinfo.Info) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return render.Encode(out, info, format, render.Options{Styled: terminal.IsTerminal(out)})
}

func runShow(cmd *cobra.Command, args []string) error {
	provider, err := newProvider(cmd)
	if err != nil {
		return err
	}
	return write(cmd, provider.SystemInfo())
}

func newKindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kind",
		Short: "Print the operating system kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := osinfo.CurrentKind()
			if !ok {
				return osinfo.ErrUnsupported
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Validate and print a previously encoded record",
		Long:  "Read a record written with --format json, yaml or toml (from a file, or stdin when the file is omitted or \"-\") and print it.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecode,
	}

	cmd.Flags().String("input-format", string(render.JSON), "Format of the input: json, yaml or toml")

	return cmd
}

func runDecode(cmd *cobra.Command, args []string) error {
	raw, err := cmd.Flags().GetString("input-format")
	if err != nil {
		return fmt.Errorf("invalid input-format flag: %w", err)
	}
	inFormat, err := render.ParseFormat(raw)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	info, err := render.Decode(in, inFormat)
	if err != nil {
		return err
	}
	return write(cmd, info)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			kind, ok := osinfo.CurrentKind()
			if !ok {
				kind = "unsupported"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "osinfo version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", kind)
		},
	}
}
