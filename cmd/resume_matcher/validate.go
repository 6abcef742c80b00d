package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record.json>",
	Short: "Validate an extraction record JSON file against the record schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	jsonBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read record file: %w", err)
	}
	if err := schemas.ValidateRecordJSON(jsonBytes); err != nil {
		return err
	}
	fmt.Printf("%s is a valid extraction record\n", args[0])
	return nil
}
