// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, row, and document types for the API.

# Request Types

Types for parsing incoming JSON:

  - UpdateSectionRequest: title, icon, color, active
  - UpdateSizeRequest: size, price
  - UpdateItemRequest: name, description, price, emoji, bgColor, image,
    active, orderIndex

Update requests carry the full set of mutable fields for their entity; the
store overwrites every editable column, so there are no partial updates.

# Response Types

  - SuccessResponse: success (always true)
  - ErrorResponse: error, message

# Row Types

One struct per table, scanned directly from queries:

  - Section: natural key, title, icon, color, active
  - Size: price tier attached to a section
  - Subsection: named item grouping under a section, ordered
  - Item: a menu entry owned by exactly one of a section or a subsection

Nullable columns (item description, price, image, and the two owner
references) are pointer fields.

# Document Types

The assembled menu document returned by GET /api/menu:

	Menu = map[sectionKey]*SectionView

SectionView attaches its sizes, subsections, and items slices only when they
are non-empty; the JSON field is omitted entirely otherwise. This presence
contract is load-bearing: renderers pick their layout branch (size grid,
subsection groups, flat item list) by which fields exist, not by length.

ItemView renames the stored bg_color column to bgColor, the only field whose
name differs between storage and document shape.
*/
package models
