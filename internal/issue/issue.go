// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one known failure mode.
type Id int

const (
	ThemeNotInstalledId Id = iota + 1
	ResourceNotFoundId
	MisconfiguredPathId
	EntryPointMissingId
	DescriptorInvalidId
)

// MarkdownMsg is a markdown-formatted remediation message.
type MarkdownMsg string

// Issue pairs a stable identifier with its rendered remediation text.
type Issue struct {
	id    Id
	mdMsg MarkdownMsg
}

// Id returns the issue identifier.
func (i *Issue) Id() Id { return i.id }

// MarkdownMsg returns the raw markdown message.
func (i *Issue) MarkdownMsg() MarkdownMsg { return i.mdMsg }

// Render renders the remediation message for terminal display.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	themeNotInstalledIssue = &Issue{
		id: ThemeNotInstalledId,
		mdMsg: `
# Theme package not found!

mantle could not resolve a theme package for this project.

## Things you can try:
- Install a theme into the conventional location:
~~~
$ mkdir -p theme && tar -xf aurora-theme.tar -C theme
~~~
- Or point your config at wherever the theme lives (mantle.yaml):
~~~yaml
theme: vendor/themes/aurora
~~~

Every other check is skipped until the theme resolves, because nothing can
cascade against a theme that is not there.`,
	}

	resourceNotFoundIssue = &Issue{
		id: ResourceNotFoundId,
		mdMsg: `
# Resource not found!

The requested resource exists in neither of its two possible locations. The
error message above lists both checked paths.

## Things you can try:
- Create the file at the override path to supply your own copy
- List every name the cascade currently knows:
~~~
$ mantle list templates
~~~`,
	}

	misconfiguredPathIssue = &Issue{
		id: MisconfiguredPathId,
		mdMsg: `
# Override directory ignored!

A configured override directory points outside the project root. mantle
never follows such paths; the conventional default was used instead.

## Things you can try:
- Use a project-relative path in mantle.yaml:
~~~yaml
overrides:
  templates: _templates
~~~`,
	}

	entryPointMissingIssue = &Issue{
		id: EntryPointMissingId,
		mdMsg: `
# No script entry point!

The bundler's fixed "main" entry has nothing to compile. This is only a
warning, but the resulting main bundle will be empty.

## Things you can try:
- Create the conventional entry file:
~~~
$ mkdir -p src && touch src/main.js
~~~
- Or configure a different one in mantle.yaml:
~~~yaml
entry_point: assets/app.js
~~~`,
	}

	descriptorInvalidIssue = &Issue{
		id: DescriptorInvalidId,
		mdMsg: `
# Invalid theme.json!

The theme's descriptor failed schema validation. The error message above
names the offending field.

## Common issues:
- "name" missing, or not lowercase-with-hyphens
- a feature without an "entry" path
- "templates" containing an empty string

The descriptor belongs to the theme package; if you did not edit it,
reinstall the theme or report the problem to the theme's author.`,
	}

	registry = map[Id]*Issue{
		ThemeNotInstalledId: themeNotInstalledIssue,
		ResourceNotFoundId:  resourceNotFoundIssue,
		MisconfiguredPathId: misconfiguredPathIssue,
		EntryPointMissingId: entryPointMissingIssue,
		DescriptorInvalidId: descriptorInvalidIssue,
	}
)

// Lookup returns the Issue for an Id.
func Lookup(id Id) (*Issue, bool) {
	i, ok := registry[id]
	return i, ok
}

// AllIds returns every known issue Id in ascending order.
func AllIds() []Id {
	ids := maps.Keys(registry)
	slices.Sort(ids)
	return ids
}
