// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package menu

import (
	"github.com/danielhkuo/granizado-menu/db"
	"github.com/danielhkuo/granizado-menu/models"
)

// Assemble reconstructs the nested menu document from flat store rows.
// Each section is built independently: sizes, then subsections (with their
// items), then the section's own direct items. A child collection is attached
// only when its query returned rows; a section with no sizes has no sizes
// field at all, which is how consumers tell "doesn't apply" from "empty".
//
// The result is a pure function of store contents at call time. Nothing is
// cached, so repeated calls observe concurrent edits immediately.
func Assemble(store *db.Store) (models.Menu, error) {
	sections, err := store.AllSections()
	if err != nil {
		return nil, err
	}

	menu := make(models.Menu, len(sections))
	for _, sec := range sections {
		view := &models.SectionView{
			ID:     sec.ID,
			Title:  sec.Title,
			Icon:   sec.Icon,
			Color:  sec.Color,
			Active: sec.Active,
		}

		sizes, err := store.SizesBySection(sec.Key)
		if err != nil {
			return nil, err
		}
		if len(sizes) > 0 {
			views := make([]models.SizeView, 0, len(sizes))
			for _, sz := range sizes {
				views = append(views, models.SizeView{ID: sz.ID, Size: sz.Size, Price: sz.Price})
			}
			view.Sizes = views
		}

		subsections, err := store.SubsectionsBySection(sec.Key)
		if err != nil {
			return nil, err
		}
		for _, sub := range subsections {
			items, err := store.ItemsBySubsection(sub.ID)
			if err != nil {
				return nil, err
			}
			view.Subsections = append(view.Subsections, models.SubsectionView{
				ID:    sub.ID,
				Title: sub.Title,
				Items: itemViews(items),
			})
		}

		items, err := store.ItemsBySection(sec.Key)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			view.Items = itemViews(items)
		}

		menu[sec.Key] = view
	}

	return menu, nil
}

// itemViews maps item rows to their document shape. The stored bg_color
// column becomes bgColor, the only renamed field between the two shapes.
func itemViews(items []models.Item) []models.ItemView {
	views := make([]models.ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, models.ItemView{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Emoji:       it.Emoji,
			BgColor:     it.BgColor,
			Image:       it.Image,
			Active:      it.Active,
		})
	}
	return views
}

// Public applies the active filter the public rendering pass uses: inactive
// sections disappear entirely, and inactive items are dropped from sections
// and subsections. The admin editor consumes the unfiltered document and
// shows inactive entities with their toggle.
//
// The input is not modified.
func Public(m models.Menu) models.Menu {
	public := make(models.Menu, len(m))
	for key, sec := range m {
		if !sec.Active {
			continue
		}

		view := &models.SectionView{
			ID:     sec.ID,
			Title:  sec.Title,
			Icon:   sec.Icon,
			Color:  sec.Color,
			Active: sec.Active,
		}
		if sec.Sizes != nil {
			view.Sizes = append([]models.SizeView(nil), sec.Sizes...)
		}
		for _, sub := range sec.Subsections {
			view.Subsections = append(view.Subsections, models.SubsectionView{
				ID:    sub.ID,
				Title: sub.Title,
				Items: activeItems(sub.Items),
			})
		}
		if filtered := activeItems(sec.Items); len(filtered) > 0 {
			view.Items = filtered
		}

		public[key] = view
	}
	return public
}

func activeItems(items []models.ItemView) []models.ItemView {
	filtered := []models.ItemView{}
	for _, it := range items {
		if it.Active {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
