// Package hcl provides the concrete HCL implementation of the manifest
// Loader interface defined in the config package. It is responsible for
// file discovery, parsing, variable evaluation, and translating alias
// blocks into the format-agnostic model.
package hcl
