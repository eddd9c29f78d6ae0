// Package setter is the hand-written reference for fluent in-place setters.
//
// Every operation mutates an already-allocated aggregate and returns a
// handle to it, so calls compose into one expression. Setters never fail.
// This package is the baseline that generated construction surfaces are
// measured against, so it deliberately depends on nothing.
package setter

// Root is the aggregate under construction.
type Root struct {
	Number    uint8
	Boolean   bool
	String    string
	OptString *string
	OptItem   *Item
	ListItems []Item
	MapItems  map[string]Item
}

// Item is the nested entity. It carries the same field kinds as Root so the
// setter register can be exercised on a nested value too.
type Item struct {
	Number    uint8
	Boolean   bool
	String    string
	OptString *string
}

// With applies f to a copy of the root and returns the mutated copy. It is
// the escape hatch for direct field assignment outside the named setters,
// and the only operation that can terminate a chain started from a value.
func (r Root) With(f func(*Root)) Root {
	f(&r)
	return r
}

// SetNumber sets the number field.
func (r *Root) SetNumber(number uint8) *Root {
	r.Number = number
	return r
}

// SetBoolean sets the boolean field.
func (r *Root) SetBoolean(boolean bool) *Root {
	r.Boolean = boolean
	return r
}

// SetString sets the string field.
func (r *Root) SetString(s string) *Root {
	r.String = s
	return r
}

// SetOptString marks the optional string present and sets it.
func (r *Root) SetOptString(s string) *Root {
	r.OptString = &s
	return r
}

// SetOptItem marks the optional item present and sets it.
func (r *Root) SetOptItem(item Item) *Root {
	r.OptItem = &item
	return r
}

// SetOptItemWith sets the optional item from a supplier, so the call site
// does not have to name the Item type.
func (r *Root) SetOptItemWith(supply func() Item) *Root {
	return r.SetOptItem(supply())
}

// SetOptItemWithDefault constructs a default item, lets f mutate it, and
// stores the result as the optional item.
func (r *Root) SetOptItemWithDefault(f func(*Item)) *Root {
	var item Item
	f(&item)
	return r.SetOptItem(item)
}

// PushListItem appends an item to the list.
func (r *Root) PushListItem(item Item) *Root {
	r.ListItems = append(r.ListItems, item)
	return r
}

// PushListItemWith appends the item produced by a supplier.
func (r *Root) PushListItemWith(supply func() Item) *Root {
	return r.PushListItem(supply())
}

// PushListItemWithDefault appends a default item after letting f mutate it.
func (r *Root) PushListItemWithDefault(f func(*Item)) *Root {
	var item Item
	f(&item)
	return r.PushListItem(item)
}

// PushMapItem inserts an item under key, overwriting any existing entry.
func (r *Root) PushMapItem(key string, item Item) *Root {
	if r.MapItems == nil {
		r.MapItems = make(map[string]Item)
	}
	r.MapItems[key] = item
	return r
}

// PushMapItemWith inserts the item produced by a supplier under key.
func (r *Root) PushMapItemWith(key string, supply func() Item) *Root {
	return r.PushMapItem(key, supply())
}

// PushMapItemWithDefault inserts a default item under key after letting f
// mutate it.
func (r *Root) PushMapItemWithDefault(key string, f func(*Item)) *Root {
	var item Item
	f(&item)
	return r.PushMapItem(key, item)
}

// With applies f to a copy of the item and returns the mutated copy.
func (i Item) With(f func(*Item)) Item {
	f(&i)
	return i
}

// SetNumber sets the number field.
func (i *Item) SetNumber(number uint8) *Item {
	i.Number = number
	return i
}

// SetBoolean sets the boolean field.
func (i *Item) SetBoolean(boolean bool) *Item {
	i.Boolean = boolean
	return i
}

// SetString sets the string field.
func (i *Item) SetString(s string) *Item {
	i.String = s
	return i
}

// SetOptString marks the optional string present and sets it.
func (i *Item) SetOptString(s string) *Item {
	i.OptString = &s
	return i
}
