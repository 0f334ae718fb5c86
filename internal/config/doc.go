// SPDX-License-Identifier: MPL-2.0

// Package config holds the per-project override configuration: where the
// content repository keeps its override directories for each resource type,
// where the theme package is installed, and which file is the bundler's main
// entry point.
//
// Configuration is loaded once from mantle.{yaml,toml,json} at the project
// root (framework defaults apply when no file exists) and is immutable for
// the rest of the run. Configured override directories that would escape the
// project root are never followed: they are replaced by the conventional
// default and surfaced to the validation layer as misconfigurations.
package config
