// Package config loads converter settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/base16-template-converter/config.toml
//  3. the project file, .b16convert.toml in the working directory
//  4. an explicit --config file
//  5. B16CONVERT_* environment variables, where a double underscore
//     separates sections (B16CONVERT_OUTPUT__MAX_RESIDUAL=5)
package config
