package world

import (
	"github.com/zyedidia/generic/mapset"
)

// ItemSet is a set of items
type ItemSet = mapset.Set[*Item]

// Item is what a pickup object yields when collected.
type Item struct {
	Name string
	Icon string // Sprite name shown in an inventory slot
}

// NewItem creates a new item with the given name and icon
func NewItem(name, icon string) *Item {
	return &Item{Name: name, Icon: icon}
}

// CountByName tallies a set of items by name.
func CountByName(items ItemSet) map[string]int {
	counts := make(map[string]int)
	items.Each(func(it *Item) {
		counts[it.Name]++
	})
	return counts
}
