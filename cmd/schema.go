package cmd

import (
	"encoding/json"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().BoolP("config", "c", false, "Generate the JSON Schema for config info output instead")
}

// schemaCmd generates JSON schemas for structured command outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured command outputs",
	Long: `Generate JSON schemas describing the JSON emitted by other commands,
for consumption by scripts and editors. By default the schema covers
the output of "convert --json".`,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("config")):
			schema = reflector.Reflect([]configFieldSchema{})
		default:
			schema = reflector.Reflect([]conversion{})
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}

// configFieldSchema mirrors the JSON shape of config.Field.MarshalJSON.
type configFieldSchema struct {
	Key         string `json:"key" jsonschema:"description=Dotted configuration key."`
	Value       any    `json:"value" jsonschema:"description=Current effective value."`
	Default     any    `json:"default" jsonschema:"description=Factory default value."`
	Description string `json:"description" jsonschema:"description=Human readable description of the field."`
	Type        string `json:"type" jsonschema:"description=Underlying value type."`
}
