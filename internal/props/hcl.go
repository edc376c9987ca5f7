package props

import (
	"fmt"

	"github.com/alexiusacademia/buildmeta/internal/resolve"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// LoadHCLFile reads top-level attributes from an HCL file:
//
//	buildABI  = "x86_64"
//	ciName    = "nightly-runner"
//	buildTimestamp = 1700000000000
//
// Every value must be a literal convertible to a string. Blocks,
// variables and function calls are rejected.
func LoadHCLFile(path string) (resolve.MapProperties, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	m := make(resolve.MapProperties, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("property %q in %s: %w", name, path, diags)
		}
		s, err := stringValue(val)
		if err != nil {
			return nil, fmt.Errorf("property %q in %s: %w", name, path, err)
		}
		m[name] = s
	}
	return m, nil
}

// stringValue converts a primitive cty value to its string form.
func stringValue(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("value is null")
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot use %s as a string: %w", val.Type().FriendlyName(), err)
	}
	return str.AsString(), nil
}
