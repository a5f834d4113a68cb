package dico

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// FromFile decodes a Dico from a file, choosing the format by extension.
// Supported extensions: .yaml, .yml, .json, .hcl
func FromFile(path string) (Dico, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dico{}, fmt.Errorf("read dico file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	case ".hcl":
		return fromHCL(data, filepath.Base(path))
	default:
		return Dico{}, fmt.Errorf("unsupported dico file extension: %s", ext)
	}
}

// FromYAML decodes YAML mapping data.
func FromYAML(data []byte) (Dico, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Dico{}, fmt.Errorf("parse yaml: %w", err)
	}
	return New(m), nil
}

// FromJSON decodes a JSON object.
func FromJSON(data []byte) (Dico, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return Dico{}, fmt.Errorf("parse json: %w", err)
	}
	return New(m), nil
}

// FromHCL decodes top-level HCL attributes. Blocks are rejected and
// expressions may not reference variables.
//
//	d, err := dico.FromHCL([]byte(`
//	frequency = 220
//	position  = [10, 20]
//	`))
func FromHCL(data []byte) (Dico, error) {
	return fromHCL(data, "payload.hcl")
}

func fromHCL(data []byte, filename string) (Dico, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Dico{}, fmt.Errorf("parse hcl: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return Dico{}, fmt.Errorf("read hcl attributes: %w", diags)
	}

	m := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return Dico{}, fmt.Errorf("evaluate %s: %w", name, diags)
		}
		v, err := ctyToGo(val)
		if err != nil {
			return Dico{}, fmt.Errorf("convert %s: %w", name, err)
		}
		m[name] = v
	}
	return New(m), nil
}

// ctyToGo bridges through JSON so nested objects and tuples come out as
// map[string]any and []any, matching the YAML and JSON loaders.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	raw, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
