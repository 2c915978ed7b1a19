// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/granizado-menu/models"
)

// ErrItemOwner is returned when an item insert does not reference exactly
// one owner (a section directly, or a subsection).
var ErrItemOwner = errors.New("item must belong to exactly one of a section or a subsection")

// Store provides keyed access to the four entity tables. Update and delete
// operations return the affected-row count; callers treat 0 as not-found.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Sections

// AllSections returns every section in creation order.
func (s *Store) AllSections() ([]models.Section, error) {
	rows, err := s.db.Query(`
		SELECT id, key, title, icon, color, active
		FROM sections
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var sec models.Section
		if err := rows.Scan(&sec.ID, &sec.Key, &sec.Title, &sec.Icon, &sec.Color, &sec.Active); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return sections, nil
}

// GetSection returns one section by its natural key.
// Returns sql.ErrNoRows when the key is unknown.
func (s *Store) GetSection(key string) (models.Section, error) {
	var sec models.Section
	err := s.db.QueryRow(`
		SELECT id, key, title, icon, color, active
		FROM sections
		WHERE key = $1
	`, key).Scan(&sec.ID, &sec.Key, &sec.Title, &sec.Icon, &sec.Color, &sec.Active)
	if err != nil {
		return models.Section{}, err
	}
	return sec, nil
}

func (s *Store) InsertSection(key, title, icon, color string, active bool) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO sections (key, title, icon, color, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, key, title, icon, color, active).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert section: %w", err)
	}
	return id, nil
}

// UpdateSection overwrites the mutable section fields and stamps updated_at.
// The natural key itself is immutable; it is a foreign-key join target.
func (s *Store) UpdateSection(key, title, icon, color string, active bool) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE sections
		SET title = $1, icon = $2, color = $3, active = $4, updated_at = CURRENT_TIMESTAMP
		WHERE key = $5
	`, title, icon, color, active, key)
	if err != nil {
		return 0, fmt.Errorf("failed to update section: %w", err)
	}
	return res.RowsAffected()
}

// Sizes

// SizesBySection returns a section's sizes in creation order.
func (s *Store) SizesBySection(sectionKey string) ([]models.Size, error) {
	rows, err := s.db.Query(`
		SELECT id, section_key, size, price
		FROM sizes
		WHERE section_key = $1
		ORDER BY id
	`, sectionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query sizes: %w", err)
	}
	defer rows.Close()

	sizes := []models.Size{}
	for rows.Next() {
		var sz models.Size
		if err := rows.Scan(&sz.ID, &sz.SectionKey, &sz.Size, &sz.Price); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, sz)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sizes: %w", err)
	}

	return sizes, nil
}

func (s *Store) InsertSize(sectionKey, size, price string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO sizes (section_key, size, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sectionKey, size, price).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert size: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateSize(id int64, size, price string) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE sizes
		SET size = $1, price = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, size, price, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update size: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) DeleteSize(id int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM sizes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete size: %w", err)
	}
	return res.RowsAffected()
}

// Subsections

// SubsectionsBySection returns a section's subsections ordered by their
// explicit display order, ties broken by insertion order.
func (s *Store) SubsectionsBySection(sectionKey string) ([]models.Subsection, error) {
	rows, err := s.db.Query(`
		SELECT id, section_key, title, order_index
		FROM subsections
		WHERE section_key = $1
		ORDER BY order_index, id
	`, sectionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query subsections: %w", err)
	}
	defer rows.Close()

	subsections := []models.Subsection{}
	for rows.Next() {
		var sub models.Subsection
		if err := rows.Scan(&sub.ID, &sub.SectionKey, &sub.Title, &sub.OrderIndex); err != nil {
			return nil, fmt.Errorf("failed to scan subsection: %w", err)
		}
		subsections = append(subsections, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subsections: %w", err)
	}

	return subsections, nil
}

func (s *Store) InsertSubsection(sectionKey, title string, orderIndex int) (int64, error) {
	var id int64
	err := s.db.QueryRow(`
		INSERT INTO subsections (section_key, title, order_index)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sectionKey, title, orderIndex).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert subsection: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateSubsection(id int64, title string, orderIndex int) (int64, error) {
	res, err := s.db.Exec(`
		UPDATE subsections
		SET title = $1, order_index = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
	`, title, orderIndex, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update subsection: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) DeleteSubsection(id int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM subsections WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete subsection: %w", err)
	}
	return res.RowsAffected()
}

// Items

// ItemsBySection returns a section's direct items (those not owned by a
// subsection) in display order.
func (s *Store) ItemsBySection(sectionKey string) ([]models.Item, error) {
	return s.queryItems(`
		SELECT id, section_key, subsection_id, name, description, price,
		       emoji, bg_color, image, active, order_index
		FROM items
		WHERE section_key = $1 AND subsection_id IS NULL
		ORDER BY order_index, id
	`, sectionKey)
}

// ItemsBySubsection returns a subsection's items in display order.
func (s *Store) ItemsBySubsection(subsectionID int64) ([]models.Item, error) {
	return s.queryItems(`
		SELECT id, section_key, subsection_id, name, description, price,
		       emoji, bg_color, image, active, order_index
		FROM items
		WHERE subsection_id = $1
		ORDER BY order_index, id
	`, subsectionID)
}

func (s *Store) queryItems(query string, arg interface{}) ([]models.Item, error) {
	rows, err := s.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var it models.Item
		err := rows.Scan(&it.ID, &it.SectionKey, &it.SubsectionID, &it.Name,
			&it.Description, &it.Price, &it.Emoji, &it.BgColor, &it.Image,
			&it.Active, &it.OrderIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// InsertItem creates an item owned by either a section or a subsection.
// Exactly one of sectionKey and subsectionID must be non-nil.
func (s *Store) InsertItem(sectionKey *string, subsectionID *int64, name string,
	description, price *string, emoji, bgColor string, image *string,
	active bool, orderIndex int) (int64, error) {

	if (sectionKey == nil) == (subsectionID == nil) {
		return 0, ErrItemOwner
	}

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO items (section_key, subsection_id, name, description, price,
		                   emoji, bg_color, image, active, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`, sectionKey, subsectionID, name, description, price, emoji, bgColor,
		image, active, orderIndex).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}
	return id, nil
}

// UpdateItem overwrites every mutable item column and stamps updated_at.
// Owner references are not editable; items move only by delete and reinsert.
func (s *Store) UpdateItem(id int64, name string, description, price *string,
	emoji, bgColor string, image *string, active bool, orderIndex int) (int64, error) {

	res, err := s.db.Exec(`
		UPDATE items
		SET name = $1, description = $2, price = $3, emoji = $4, bg_color = $5,
		    image = $6, active = $7, order_index = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
	`, name, description, price, emoji, bgColor, image, active, orderIndex, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update item: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) DeleteItem(id int64) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete item: %w", err)
	}
	return res.RowsAffected()
}
