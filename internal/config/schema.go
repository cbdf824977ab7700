package config

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"

	"github.com/invopop/jsonschema"
)

// Schema describes every supported environment variable as a JSON Schema
// object, keyed by variable name, with struct defaults filled in.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		FieldNameTag:               "env",
		AllowAdditionalProperties:  true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}

	schema := reflector.Reflect(&Config{})
	schema.Title = "Avatar Cockpit Configuration"
	schema.Description = "Environment variables read at startup"

	durationType := reflect.TypeOf(time.Duration(0))
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get("env")
		prop, ok := schema.Properties.Get(name)
		if name == "" || !ok {
			continue
		}

		if field.Type == durationType {
			prop.Type = "string"
			prop.Format = "duration"
		}
		if def, ok := field.Tag.Lookup("envDefault"); ok {
			prop.Default = typedDefault(field.Type.Kind(), def)
		}
	}
	return schema
}

func typedDefault(kind reflect.Kind, raw string) any {
	switch kind {
	case reflect.Int:
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	case reflect.Bool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	return raw
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
