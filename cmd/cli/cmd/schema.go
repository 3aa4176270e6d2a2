package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"agent-hooks/internal/domain/hook"
	"agent-hooks/internal/domain/safety"
	"agent-hooks/internal/infrastructure/audit"
)

// schemaGenerators maps schema names to their reflectors.
var schemaGenerators = map[string]func() *jsonschema.Schema{
	"payload":   hook.GenerateSchema[hook.Payload],
	"decision":  hook.GenerateSchema[safety.Decision],
	"log-entry": hook.GenerateSchema[audit.Entry],
}

// schemaCmd represents the schema command.
//
//nolint:gochecknoglobals // cobra command pattern requires global variable
var schemaCmd = &cobra.Command{
	Use:   "schema [payload|decision|log-entry]",
	Short: "Print JSON Schemas for the hook data types",
	Long: `Prints the JSON Schema of the named hook data type, or of all of them
when no name is given. Useful for documenting the hook wiring and for
validating payloads in test harnesses.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			generate, ok := schemaGenerators[args[0]]
			if !ok {
				return fmt.Errorf("unknown schema %q", args[0])
			}
			return printSchema(cmd, generate())
		}

		all := map[string]*jsonschema.Schema{}
		for name, generate := range schemaGenerators {
			all[name] = generate()
		}
		data, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func printSchema(cmd *cobra.Command, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
