package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// renderOutput marshals v to w in the requested format.
func renderOutput(w io.Writer, v any, format string) error {
	switch format {
	case "yaml", "":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return newValidationError(fmt.Sprintf("unsupported output format: %s", format), nil)
	}
}
