package app

import (
	"context"
	"fmt"

	"github.com/vk/namereg/internal/placeholder"
)

// Run registers all loaded aliases, resolves deferred placeholders against
// manifest variables and the process environment, and writes the report.
// Any registration or resolve failure aborts the run; a started resolve
// pass is not rolled back.
func (a *App) Run(ctx context.Context) error {
	a.logger.Debug("App.Run method started.")

	for _, alias := range a.model.Aliases {
		if err := a.registry.RegisterAlias(alias.Target, alias.Name); err != nil {
			return fmt.Errorf("failed to register alias %q -> %q from %s: %w",
				alias.Name, alias.Target, alias.SourceFile, err)
		}
	}
	a.logger.Info("Aliases registered.", "count", len(a.model.Aliases))

	source := placeholder.Chain(
		placeholder.Map(a.model.Variables),
		placeholder.Env(),
	)
	if err := a.registry.ResolveAliases(placeholder.ForRegistry(source)); err != nil {
		return fmt.Errorf("placeholder resolve pass failed: %w", err)
	}
	a.logger.Info("Placeholder resolve pass finished.", "entries", a.registry.Count())

	if len(a.config.Names) > 0 {
		for _, name := range a.config.Names {
			fmt.Fprintf(a.outW, "%s -> %s\n", name, a.registry.CanonicalName(name))
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	entries := a.registry.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.outW, "no aliases registered")
		return nil
	}
	for _, ent := range entries {
		fmt.Fprintf(a.outW, "%s -> %s (canonical: %s)\n",
			ent.Alias, ent.Target, a.registry.CanonicalName(ent.Alias))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
