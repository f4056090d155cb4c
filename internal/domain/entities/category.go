package entities

import (
	"errors"
	"strings"
)

// Category is the closed set of infrastructure types a report can target.

type Category string

const (
	CategoryRoad        Category = "ROAD"
	CategoryBridge      Category = "BRIDGE"
	CategorySchool      Category = "SCHOOL"
	CategoryHealth      Category = "HEALTH"
	CategoryWater       Category = "WATER"
	CategoryElectricity Category = "ELECTRICITY"
)

var ErrUnknownCategory = errors.New("unknown report category")

// categoryAliases maps the Indonesian keywords used on the SMS channel to
// the canonical categories. Canonical names are accepted as well.
var categoryAliases = map[string]Category{
	"JALAN":     CategoryRoad,
	"JEMBATAN":  CategoryBridge,
	"SEKOLAH":   CategorySchool,
	"KESEHATAN": CategoryHealth,
	"AIR":       CategoryWater,
	"LISTRIK":   CategoryElectricity,
}

// Categories lists the canonical values, in display order.
func Categories() []Category {
	return []Category{
		CategoryRoad,
		CategoryBridge,
		CategorySchool,
		CategoryHealth,
		CategoryWater,
		CategoryElectricity,
	}
}

// ParseCategory resolves a raw category token (canonical name or SMS alias,
// case-insensitive) into a Category.
func ParseCategory(raw string) (Category, error) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		return "", ErrUnknownCategory
	}
	for _, c := range Categories() {
		if string(c) == token {
			return c, nil
		}
	}
	if c, ok := categoryAliases[token]; ok {
		return c, nil
	}
	return "", ErrUnknownCategory
}
