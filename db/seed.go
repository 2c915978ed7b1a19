// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"log/slog"
)

// Seed populates an empty database with the initial granizado menu.
// A store that already contains sections is left untouched, so calling this
// on every startup is safe.
func (s *Store) Seed() error {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sections`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count sections: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded", "sections", count)
		return nil
	}

	slog.Info("seeding database with initial menu data")

	sections := []struct {
		key    string
		title  string
		icon   string
		color  string
		active bool
	}{
		{"especiales", "Granizados Especiales", "🍹", "text-red-600", true},
		{"sinLicor", "Granizados sin Licor", "🧊", "text-blue-600", true},
		{"conLicor", "Granizados con Licor", "🍸", "text-green-600", true},
		{"extras", "Extras", "✨", "text-purple-600", true},
		{"toppings", "Toppings", "🍭", "text-pink-600", true},
		{"gaseosas", "Gaseosas", "🥤", "text-orange-600", false},
		{"cervezas", "Cervezas", "🍺", "text-yellow-600", false},
	}
	for _, sec := range sections {
		if _, err := s.InsertSection(sec.key, sec.title, sec.icon, sec.color, sec.active); err != nil {
			return err
		}
	}

	sizes := []struct {
		sectionKey string
		size       string
		price      string
	}{
		{"sinLicor", "8 Onz", "$8.000"},
		{"sinLicor", "12 Onz", "$12.000"},
		{"sinLicor", "16 Onz", "$16.000"},
		{"sinLicor", "24 Onz", "$20.000"},
		{"conLicor", "8 Onz", "$10.000"},
		{"conLicor", "12 Onz", "$14.000"},
		{"conLicor", "16 Onz", "$18.000"},
		{"conLicor", "24 Onz", "$25.000"},
	}
	for _, sz := range sizes {
		if _, err := s.InsertSize(sz.sectionKey, sz.size, sz.price); err != nil {
			return err
		}
	}

	conLicorSub, err := s.InsertSubsection("especiales", "Con Licor (16 Oz)", 0)
	if err != nil {
		return err
	}
	sinLicorSub, err := s.InsertSubsection("especiales", "Sin Licor (16 Oz)", 1)
	if err != nil {
		return err
	}

	items := []struct {
		sectionKey   *string
		subsectionID *int64
		name         string
		description  *string
		price        *string
		emoji        string
		bgColor      string
		image        *string
		active       bool
		orderIndex   int
	}{
		// Especiales - Con Licor
		{nil, &conLicorSub, "Baileys", str("Cremoso y delicioso"), str("$22.000"), "🍹", "bg-gray-200", str("/img/sabores/baileys.png"), true, 0},
		{nil, &conLicorSub, "Piña Colada (Ron)", str("Tropical y refrescante"), str("$22.000"), "🥥", "bg-gray-200", str("/img/sabores/pina_colada.png"), true, 1},
		{nil, &conLicorSub, "Mango Viche (Tequila)", str("Dulce y picante"), str("$22.000"), "🥭", "bg-gray-200", str("/img/sabores/mango_viche.png"), true, 2},
		{nil, &conLicorSub, "Lulo (Vodka)", str("Ácido y refrescante"), str("$22.000"), "🍋", "bg-gray-200", str("/img/sabores/lulo.png"), true, 3},

		// Especiales - Sin Licor
		{nil, &sinLicorSub, "Piña Colada", str("Tropical y refrescante"), str("$20.000"), "🥥", "bg-blue-100", str("/img/sabores/pina_colada.png"), true, 0},
		{nil, &sinLicorSub, "Mango Viche", str("Dulce y picante"), str("$20.000"), "🥭", "bg-orange-100", str("/img/sabores/mango_viche.png"), true, 1},
		{nil, &sinLicorSub, "Lulo", str("Ácido y refrescante"), str("$20.000"), "🍋", "bg-yellow-100", str("/img/sabores/lulo.png"), true, 2},

		// Sin Licor
		{str("sinLicor"), nil, "Mora Azul", str("Dulce y refrescante"), nil, "🫐", "bg-blue-100", str("/img/sabores/mora_azul.png"), true, 0},
		{str("sinLicor"), nil, "Maracuyá Mango", str("Tropical y ácido"), nil, "🥭", "bg-orange-100", str("/img/sabores/maracu_mango.png"), true, 1},
		{str("sinLicor"), nil, "BombomBum", str("Dulce y cremoso"), nil, "🍬", "bg-red-100", str("/img/sabores/bombombum.png"), true, 2},
		{str("sinLicor"), nil, "Limonada Sandía", str("Refrescante y dulce"), nil, "🍉", "bg-pink-100", str("/img/sabores/sandia.png"), true, 3},

		// Con Licor
		{str("conLicor"), nil, "Mora Azul", str("Dulce y refrescante"), nil, "🫐", "bg-blue-100", str("/img/sabores/mora_azul.png"), true, 0},
		{str("conLicor"), nil, "Maracuyá Mango", str("Tropical y ácido"), nil, "🥭", "bg-orange-100", str("/img/sabores/maracu_mango.png"), true, 1},
		{str("conLicor"), nil, "BombomBum", str("Dulce y cremoso"), nil, "🍬", "bg-red-100", str("/img/sabores/bombombum.png"), true, 2},
		{str("conLicor"), nil, "Limonada Sandía", str("Refrescante y dulce"), nil, "🍉", "bg-pink-100", str("/img/sabores/sandia.png"), true, 3},

		// Extras
		{str("extras"), nil, "Bolas Explosivas", str("Sabores: Maracuyá, Lulo, Cereza"), str("$2.000"), "💥", "bg-purple-100", str("/img/extras/perlas.png"), true, 0},
		{str("extras"), nil, "Micheladas Sal/Azúcar", str("Sabores: Mango, Fantasy"), str("$1.000"), "🍺", "bg-yellow-100", str("/img/extras/michelado.png"), true, 1},

		// Toppings
		{str("toppings"), nil, "Gusanito", nil, str("$200"), "🐛", "bg-pink-100", str("/img/toppings/gusanito.png"), true, 0},
		{str("toppings"), nil, "Aro", nil, str("$200"), "🍩", "bg-pink-100", str("/img/toppings/aro.png"), true, 1},
		{str("toppings"), nil, "Chicle Miniatura", nil, str("$200"), "🍬", "bg-pink-100", str("/img/toppings/mini_chicles.png"), true, 2},
		{str("toppings"), nil, "Bombombum", nil, str("$500"), "💣", "bg-pink-100", str("/img/toppings/bombombum.png"), true, 3},
		{str("toppings"), nil, "Cinta", nil, str("$300"), "🎀", "bg-pink-100", str("/img/toppings/cinta.png"), true, 4},
		{str("toppings"), nil, "Tipitin", nil, str("$300"), "🍭", "bg-pink-100", str("/img/toppings/tipitin.png"), true, 5},

		// Gaseosas
		{str("gaseosas"), nil, "Coca Cola", str("350ml"), str("$3.500"), "🥤", "bg-red-100", nil, true, 0},
		{str("gaseosas"), nil, "Sprite", str("350ml"), str("$3.500"), "🥤", "bg-green-100", nil, true, 1},

		// Cervezas
		{str("cervezas"), nil, "Aguila", str("330ml"), str("$4.500"), "🍺", "bg-yellow-100", nil, true, 0},
		{str("cervezas"), nil, "Club Colombia", str("330ml"), str("$5.000"), "🍺", "bg-yellow-100", nil, true, 1},
		{str("cervezas"), nil, "Corona", str("355ml"), str("$6.000"), "🍺", "bg-yellow-100", nil, false, 2},
	}
	for _, it := range items {
		_, err := s.InsertItem(it.sectionKey, it.subsectionID, it.name,
			it.description, it.price, it.emoji, it.bgColor, it.image,
			it.active, it.orderIndex)
		if err != nil {
			return err
		}
	}

	slog.Info("database seeded", "sections", len(sections), "sizes", len(sizes), "items", len(items))
	return nil
}

func str(s string) *string {
	return &s
}
