// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package menu assembles the nested menu document from flat store rows.

# Assembly

Assemble is read-only projection: per section it loads sizes, subsections
(each with its items), and direct items, and keys the result by the section's
natural key:

	doc, err := menu.Assemble(store)

Two rules are contracts, not incidental behavior:

  - A child collection (sizes, subsections, items) is attached only when its
    query returned rows. Field presence, not length, tells a renderer which
    layout branch a section uses.
  - Every item appears under exactly one parent: its subsection if the
    subsection reference is set, otherwise its section directly.

# Public Filtering

Assemble returns everything, inactive entities included - that is what the
admin editor shows. The public menu applies the active filter downstream:

	menu.Public(doc)

drops inactive sections and inactive items. Rows stay in the store and
remain editable; active only gates visibility.
*/
package menu
