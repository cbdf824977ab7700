package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/janhq/avatar-cockpit/internal/config"
)

// secretVars are masked by "config show".
var secretVars = map[string]bool{
	"LIVEKIT_API_KEY":    true,
	"LIVEKIT_API_SECRET": true,
	"CARTESIA_API_KEY":   true,
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
		Long:  `Inspect the environment variables the server reads and the values it would resolve.`,
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of all configuration variables",
		RunE:  runConfigSchema,
	}
	schemaCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration with secrets masked",
		RunE:  runConfigShow,
	}
	showCmd.Flags().String("format", "yaml", "Output format: yaml, json")

	configCmd.AddCommand(schemaCmd)
	configCmd.AddCommand(showCmd)
	return configCmd
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return fmt.Errorf("render schema: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", output)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	values := maskedValues(cfg)

	format, _ := cmd.Flags().GetString("format")
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(values)
	default:
		return fmt.Errorf("unsupported format %q (use yaml or json)", format)
	}
}

// maskedValues flattens cfg into variable name -> display value.
func maskedValues(cfg *config.Config) map[string]string {
	values := make(map[string]string)
	v := reflect.ValueOf(*cfg)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		value := fmt.Sprint(v.Field(i).Interface())
		if secretVars[name] {
			value = mask(value)
		}
		values[name] = value
	}
	return values
}

func mask(value string) string {
	switch {
	case value == "":
		return ""
	case len(value) <= 4:
		return "****"
	default:
		return value[:2] + strings.Repeat("*", len(value)-4) + value[len(value)-2:]
	}
}
