package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/presbrey/rfc4648/base32"
	"github.com/presbrey/rfc4648/base64"
	"github.com/presbrey/rfc4648/config"
	"github.com/spf13/cobra"
)

type codec struct {
	encode func([]byte) []byte
	decode func(string) ([]byte, error)
}

var codecs = map[string]codec{
	"base64": {encode: base64.Encode, decode: base64.Decode},
	"base32": {encode: base32.Encode, decode: base32.Decode},
}

// app carries the resolved settings from the root command to subcommands
type app struct {
	cfg *config.Config

	codecName  string
	wrap       int
	configFile string
	envFile    string
	noEnvFiles bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rfc4648",
		Short: "Base64 and Base32 encoding and decoding utility",
		Long: `A command-line utility for encoding and decoding data with the standard
RFC 4648 Base64 and Base32 alphabets. Decoding is strict: only canonical,
correctly padded input is accepted. Whitespace in the input is ignored.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.codecName, "codec", "c", "base64", "encoding to use: base64 or base32")
	flags.StringVar(&a.configFile, "config", "", "YAML or TOML config file")
	flags.StringVar(&a.envFile, "env-file", ".env", "name of the env files to search for")
	flags.BoolVar(&a.noEnvFiles, "no-env-files", false, "do not search for env files")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log the resolved settings")

	encodeCmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode data",
		Long:  `Encode data from stdin or a file.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return writeWrapped(cmd.OutOrStdout(), codecs[a.cfg.Codec].encode(input), a.cfg.Wrap)
		},
	}
	encodeCmd.Flags().IntVarP(&a.wrap, "wrap", "w", 76, "wrap encoded lines after this many symbols (0 disables wrapping)")

	decodeCmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode data",
		Long:  `Decode data from stdin or a file to its original bytes.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			decoded, err := codecs[a.cfg.Codec].decode(string(input))
			if err != nil {
				return fmt.Errorf("error decoding %s data: %w", a.cfg.Codec, err)
			}

			_, err = cmd.OutOrStdout().Write(decoded)
			return err
		},
	}

	rootCmd.AddCommand(encodeCmd, decodeCmd)
	return rootCmd
}

// configure loads the config and lets explicitly set flags override it
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(&config.Options{
		EnvFileName:  a.envFile,
		SkipEnvFiles: a.noEnvFiles,
		File:         a.configFile,
	})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("codec") {
		cfg.Codec = a.codecName
	}
	if f := cmd.Flags().Lookup("wrap"); f != nil && f.Changed {
		cfg.Wrap = a.wrap
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if a.verbose {
		log.Printf("codec=%s wrap=%d", cfg.Codec, cfg.Wrap)
	}
	a.cfg = cfg
	return nil
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		// Read from stdin if no file is specified
		input, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("error reading from stdin: %w", err)
		}
		return input, nil
	}

	input, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", args[0], err)
	}
	return input, nil
}

// writeWrapped writes encoded in lines of at most width symbols, each
// ending in a newline. A width of 0 writes a single line.
func writeWrapped(w io.Writer, encoded []byte, width int) error {
	if width <= 0 || len(encoded) <= width {
		_, err := fmt.Fprintf(w, "%s\n", encoded)
		return err
	}

	for len(encoded) > 0 {
		n := min(width, len(encoded))
		if _, err := fmt.Fprintf(w, "%s\n", encoded[:n]); err != nil {
			return err
		}
		encoded = encoded[n:]
	}
	return nil
}
