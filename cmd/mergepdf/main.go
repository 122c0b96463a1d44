// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mergepdf CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mergepdf/internal/capability"
	"github.com/pdiddy/mergepdf/internal/merge"
	"github.com/pdiddy/mergepdf/internal/pdfsource"
	"github.com/pdiddy/mergepdf/internal/resolve"
	"github.com/pdiddy/mergepdf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd merges its arguments into one PDF.
var rootCmd = &cobra.Command{
	Use:   "mergepdf [files...]",
	Short: "Merge PDF files and images into one PDF",
	Long: `mergepdf concatenates the pages of PDF files, and images converted to
single pages, into one output PDF. Inputs are merged in the order given.

Files come from the command line, from a YAML manifest (--manifest), or, when
neither is given and standard input is a terminal, from an interactive prompt.
Files that cannot be read are reported and skipped.`,
	Example: `  mergepdf a.pdf b.pdf c.pdf
  mergepdf cover.png report.pdf --output combined.pdf
  mergepdf scans/*.jpg --image-size original -o scans.pdf
  mergepdf --manifest book.yaml`,
	SilenceUsage: true,
	RunE:         runMerge,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mergepdf.yaml or ~/.config/mergepdf/config.yaml)")

	rootCmd.Flags().StringP("output", "o", types.DefaultOutput, "output filename")
	rootCmd.Flags().BoolP("verbose", "v", false, "print the resolved inputs and output before merging")
	rootCmd.Flags().String("image-size", string(types.PlacementFit), "image placement: a4 (fit to an A4 canvas) or original (native size)")
	rootCmd.Flags().BoolP("force", "f", false, "overwrite the output file without asking")
	rootCmd.Flags().StringP("manifest", "m", "", "YAML file listing the inputs and output")

	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("image_size", rootCmd.Flags().Lookup("image-size"))
	_ = viper.BindPFlag("force", rootCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mergepdf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mergepdf"))
		}
	}

	viper.SetEnvPrefix("MERGEPDF")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	conf := pdfsource.Configuration(cfg.PDF.Strict)
	caps := capability.Detect(capability.Options{ImagesEnabled: cfg.Image.Enabled, Conf: conf}, os.Stderr)

	manifest, _ := cmd.Flags().GetString("manifest")
	outputSet := cmd.Flags().Changed("output")

	var r resolve.Resolver
	switch {
	case len(args) > 0:
		r = &resolve.ArgsResolver{FS: fs, Args: args, Output: cfg.Output, Warn: os.Stderr}
	case manifest != "":
		override := ""
		if outputSet {
			override = cfg.Output
		}
		r = &resolve.ManifestResolver{FS: fs, Path: manifest, Output: override, Warn: os.Stderr}
	case caps.Interactive:
		fmt.Println("No files provided. Starting interactive file selection...")
		r = &resolve.PromptResolver{FS: fs, In: os.Stdin, Out: os.Stdout, DefaultOutput: cfg.Output}
	default:
		return fmt.Errorf("no input files provided and standard input is not a terminal")
	}

	req, err := r.Resolve()
	if errors.Is(err, resolve.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	if req.Confirm && !cfg.Force {
		ok, err := resolve.ConfirmOverwrite(fs, req.Output, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Operation cancelled.")
			return nil
		}
	}

	if cfg.Verbose {
		paths := make([]string, len(req.Inputs))
		for i, in := range req.Inputs {
			paths[i] = in.Path
		}
		fmt.Printf("Input files: %v\n", paths)
		fmt.Printf("Output file: %s\n\n", req.Output)
	}

	p := merge.New(fs, cfg, caps, conf, os.Stdout)
	_, err = p.Run(req.Inputs, req.Output)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
