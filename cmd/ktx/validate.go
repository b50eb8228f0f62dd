package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ktxkit/ktxkit/ktx2"
	"github.com/ktxkit/ktxkit/pkg/types"
)

var (
	validateFormat   string
	warningsAsErrors bool
	gltfBasisu       bool
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateFormat, "format", "text", "Output format (text, json, mini-json)")
	cmd.Flags().
		BoolVarP(&warningsAsErrors, "warnings-as-errors", "e", false, "Treat warnings as errors")
	cmd.Flags().
		BoolVarP(&gltfBasisu, "gltf-basisu", "g", false, "Check compatibility with the KHR_texture_basisu glTF extension")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input_file>",
		Short: "Validate a KTX2 file",
		Long: `The validate command checks a KTX2 file against the KTX 2.0
specification and reports every deviation as a warning, error or fatal
diagnostic with a stable numeric ID.

Exit codes:
  0 - the file is valid (warnings allowed)
  1 - command line usage error
  2 - the input file could not be opened
  3 - validation errors or a fatal diagnostic

Example:
  ktx validate texture.ktx2
  ktx validate --format json texture.ktx2
  ktx validate --warnings-as-errors texture.ktx2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func runValidate(args []string) error {
	path := args[0]

	switch validateFormat {
	case "text", "json", "mini-json":
	default:
		return fmt.Errorf("unknown output format: %s (must be text, json, or mini-json)", validateFormat)
	}

	logger.Debug("validating file",
		zap.String("path", path),
		zap.Bool("warnings_as_errors", warningsAsErrors),
		zap.Bool("gltf_basisu", gltfBasisu))

	var result types.ValidationResult
	code := ktx2.ValidateFile(path, ktx2.Options{
		WarningsAsErrors: warningsAsErrors,
		Report:           result.Add,
	})
	result.Valid = code == ktx2.ExitSuccess

	logger.Debug("validation finished",
		zap.Int("exit_code", code),
		zap.Int("messages", len(result.Messages)))

	switch validateFormat {
	case "text":
		fmt.Print(result.FormatText())
	case "json":
		out, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(out)
	case "mini-json":
		out, err := result.FormatJSONMini()
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	if code == ktx2.ExitIOFailure {
		printError("could not open input file: %s\n", path)
	}

	_ = logger.Sync()
	os.Exit(code)
	return nil
}
