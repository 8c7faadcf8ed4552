// Package config defines the format-agnostic model for alias manifests,
// along with the Loader interface implemented by format-specific packages
// such as hcl. The model is the single source of truth the app registers
// from; it carries no parser types.
package config
