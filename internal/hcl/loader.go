package hcl

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/namereg/internal/config"
	"github.com/vk/namereg/internal/ctxlog"
	"github.com/vk/namereg/internal/fsutil"
	"github.com/vk/namereg/internal/schema"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses every .hcl file under the given paths into the
// format-agnostic model. Variables blocks are merged across files in
// discovery order, with later files winning on duplicate names; each
// file's alias expressions see the variables merged up to and including
// that file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := &config.Model{Variables: make(map[string]string)}

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover manifests under %s: %w", p, err)
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		logger.Warn("No .hcl manifest files found.", "paths", paths)
		return model, nil
	}
	logger.Debug("Found manifest files to load.", "files", files)

	for _, file := range files {
		if err := l.loadFile(file, model); err != nil {
			return nil, err
		}
	}

	logger.Info("Manifests loaded.", "files", len(files), "aliases", len(model.Aliases), "variables", len(model.Variables))
	return model, nil
}

func (l *Loader) loadFile(path string, model *config.Model) error {
	hclFile, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var doc schema.Document
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &doc); diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %w", path, diags)
	}

	if err := mergeVariables(path, doc.Variables, model.Variables); err != nil {
		return err
	}

	evalCtx := evalContext(model.Variables)
	for i, a := range doc.Aliases {
		name, err := stringValue(a.Name, evalCtx)
		if err != nil {
			return fmt.Errorf("invalid name for alias block %d in %s: %w", i+1, path, err)
		}
		target, err := stringValue(a.Target, evalCtx)
		if err != nil {
			return fmt.Errorf("invalid target for alias %q in %s: %w", name, path, err)
		}
		model.Aliases = append(model.Aliases, &config.Alias{
			Name:       name,
			Target:     target,
			SourceFile: path,
		})
	}
	return nil
}

// mergeVariables evaluates the attributes of a variables block as literals
// and merges them into vars.
func mergeVariables(path string, block *schema.VariablesBlock, vars map[string]string) error {
	if block == nil {
		return nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid variables block in %s: %w", path, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("invalid value for variable %q in %s: %w", name, path, diags)
		}
		str, err := toString(val)
		if err != nil {
			return fmt.Errorf("variable %q in %s: %w", name, path, err)
		}
		vars[name] = str
	}
	return nil
}

// evalContext exposes the merged variables to alias expressions as var.*.
func evalContext(vars map[string]string) *hcl.EvalContext {
	values := make(map[string]cty.Value, len(vars))
	for name, v := range vars {
		values[name] = cty.StringVal(v)
	}
	varObj := cty.EmptyObjectVal
	if len(values) > 0 {
		varObj = cty.ObjectVal(values)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": varObj},
	}
}

func stringValue(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	return toString(val)
}

func toString(val cty.Value) (string, error) {
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("value is not a string: %w", err)
	}
	if converted.IsNull() {
		return "", errors.New("value must not be null")
	}
	return converted.AsString(), nil
}
