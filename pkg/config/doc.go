/*
Package config manages configuration parsing and validation for cssvar.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
  - Loads the optional config file (.cssvar.yaml / .cssvar.hcl)
  - Falls back to the built-in defaults (target list, backup suffix) when
    no file exists, so the tool runs with zero setup
  - Validates configured rules and fills default values
  - Resolves the target list, expanding doublestar patterns

🔄 Flow:
1. Reads configuration from file (or synthesizes the defaults)
2. Parses format-specific syntax
3. Validates configuration values
4. Provides the effective rule table and resolved targets to operations

🤝 Interfaces:
- Parser: Format-specific parsing

🔍 Example:

	cfg, err := config.LoadOrDefault(ctx, ".cssvar.yaml")
	if err != nil {
		return err
	}

	targets, err := cfg.ResolveTargets(ctx)
	table := cfg.EffectiveRules()
*/
package config
