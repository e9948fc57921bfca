// Package main provides the CLI entry point for exdecode.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exdecode-go/pkg/exdecode"
	"github.com/ukaji3/exdecode-go/pkg/exdecode/output"
)

var (
	outputPath string
	pretty     bool
	sheets     []string
	sheetsDir  string
	dump       bool
	verbose    bool
	pprofCPU   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exdecode [input.xlsx]",
		Short: "Compile instruction decode tables from Excel files",
		Long: `exdecode compiles #match decode tables authored in Excel workbooks
into signal models and outputs them as JSON.`,
		Args:         cobra.ExactArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringArrayVar(&sheets, "sheet", nil, "Compile only the named sheet (repeatable)")
	rootCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump the compiled workbook to stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every synthesized signal")
	rootCmd.Flags().BoolVar(&pprofCPU, "pprof.cpu", false, "Write a CPU profile to the current directory")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if pprofCPU {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}

	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}

	opts := exdecode.DefaultOptions()
	opts.Sheets = sheets
	opts.Logger = Logger(cmd.ErrOrStderr(), lvl)

	wb, err := exdecode.Compile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if dump {
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(cmd.ErrOrStderr(), wb)
	}

	jsonData, err := output.ToJSON(wb, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(wb, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func writeSheetFiles(wb *exdecode.WorkbookData, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, sheet := range wb.SheetList() {
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
