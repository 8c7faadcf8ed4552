// Package schema holds the HCL struct schema for alias manifest files.
// Expressions are captured raw so the loader controls evaluation context.
package schema

import "github.com/hashicorp/hcl/v2"

// AliasDefinition represents an `alias` block from a manifest file. Name
// and target are expressions so they can interpolate var.* values; the
// $${...} escape defers a placeholder to the post-registration resolve
// pass.
type AliasDefinition struct {
	Name   hcl.Expression `hcl:"name"`
	Target hcl.Expression `hcl:"target"`
}

// VariablesBlock holds the raw attributes of a `variables` block.
type VariablesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Document represents the top-level structure of an alias manifest file.
type Document struct {
	Variables *VariablesBlock    `hcl:"variables,block"`
	Aliases   []*AliasDefinition `hcl:"alias,block"`
	Body      hcl.Body           `hcl:",remain"`
}
