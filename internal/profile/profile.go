// Package profile loads optional HCL files that provide default values for
// the ambient command-line options, such as logging. Flags given explicitly
// on the command line always take precedence over a profile.
//
// A profile is a flat list of string attributes:
//
//	log_level  = "debug"
//	log_format = "json"
package profile

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/hexdump/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Profile holds the values read from a profile file. Empty fields were not
// set by the file.
type Profile struct {
	LogLevel  string
	LogFormat string
}

// Load parses the HCL profile at path.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile.", "path", path)

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	p := &Profile{}
	for _, name := range names {
		attr := attrs[name]
		var target *string
		switch name {
		case "log_level":
			target = &p.LogLevel
		case "log_format":
			target = &p.LogFormat
		default:
			return nil, fmt.Errorf("%s: unsupported profile attribute %q", attr.NameRange, name)
		}

		value, err := stringValue(attr)
		if err != nil {
			return nil, err
		}
		*target = value
	}

	logger.Debug("Profile loaded.", "path", path, "log_level", p.LogLevel, "log_format", p.LogFormat)
	return p, nil
}

// stringValue evaluates a literal attribute and requires it to be a string.
// No variables or functions are available to profile expressions.
func stringValue(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to evaluate profile attribute %q: %w", attr.Name, diags)
	}
	if val.IsNull() || !val.IsKnown() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: profile attribute %q must be a string, got %s", attr.Expr.Range(), attr.Name, val.Type().FriendlyName())
	}
	return val.AsString(), nil
}
