// Command flowglyphcli renders a flowglyph YAML template against an
// optional data file and writes the result as PNG/JPEG. It is a thin
// demonstration wrapper around the render package, not a framework: flag
// parsing uses the standard library rather than a CLI framework since a
// handful of flags don't justify pulling in one (see SPEC_FULL.md §2.5).
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	imageutil "github.com/flowglyph/flowglyph/internal/core/image"
	"github.com/flowglyph/flowglyph/render"
	"github.com/flowglyph/flowglyph/value"
	"github.com/flowglyph/flowglyph/yamlsrc"
)

func main() {
	template := flag.String("template", "", "path to the YAML template (required)")
	data := flag.String("data", "", "path to a YAML or JSON data file (optional)")
	out := flag.String("out", "out.png", "output image path (.png or .jpg)")
	culture := flag.String("culture", "", "BCP-47 culture override")
	deterministic := flag.Bool("deterministic", false, "use the deterministic rendering preset")
	flag.Parse()

	if *template == "" {
		log.Fatal("flowglyphcli: -template is required")
	}

	if err := run(*template, *data, *out, *culture, *deterministic); err != nil {
		log.Fatalf("flowglyphcli: %v", err)
	}
}

func run(templatePath, dataPath, outPath, culture string, deterministic bool) error {
	templateDoc, err := loadYAML(templatePath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	dataDoc := value.FromObject(value.NewObject())
	if dataPath != "" {
		dataDoc, err = loadData(dataPath)
		if err != nil {
			return fmt.Errorf("load data: %w", err)
		}
	}

	opts := render.Default()
	if deterministic {
		opts = render.Deterministic()
	}
	if culture != "" {
		opts.Culture = culture
	}

	renderer := render.New(render.Config{})
	result, err := renderer.Render(templateDoc, dataDoc, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	for _, d := range result.Diagnostics {
		log.Printf("diagnostic: %s: %s", d.Code, d.Message)
	}

	if err := imageutil.ExportAuto(result.Image, outPath); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Printf("wrote %dx%d image to %s", result.Width, result.Height, outPath)
	return nil
}

func isJSONPath(path string) bool {
	n := len(path)
	return n >= 5 && path[n-5:] == ".json"
}

func loadYAML(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return value.Null, err
	}
	return yamlsrc.Decode(data)
}

// loadData accepts either YAML or JSON, detected by extension, since the
// render data model (spec §3.6) is a YAML/JSON-agnostic generic tree.
func loadData(path string) (value.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return value.Null, err
	}
	if isJSONPath(path) {
		var generic interface{}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&generic); err != nil {
			return value.Null, fmt.Errorf("parse json: %w", err)
		}
		return jsonToValue(generic), nil
	}
	return yamlsrc.Decode(raw)
}

// jsonToValue converts a json.Decoder-produced generic tree (maps,
// slices, json.Number, string, bool, nil) into value.Value. JSON object
// key order is not preserved (encoding/json discards it into a Go map),
// unlike yamlsrc's yaml.Node-based Decode.
func jsonToValue(v interface{}) value.Value {
	switch t := v.(type) {
	case nil:
		return value.Null
	case bool:
		return value.Bool(t)
	case json.Number:
		f, _ := t.Float64()
		return value.Number(f)
	case float64:
		return value.Number(t)
	case string:
		return value.String(t)
	case []interface{}:
		items := make([]value.Value, len(t))
		for i, e := range t {
			items[i] = jsonToValue(e)
		}
		return value.Array(items)
	case map[string]interface{}:
		obj := value.NewObject()
		for k, e := range t {
			obj.Set(k, jsonToValue(e))
		}
		return value.FromObject(obj)
	default:
		return value.Null
	}
}
