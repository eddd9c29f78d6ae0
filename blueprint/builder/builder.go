// Package builder is the hand-written reference for staged builders.
//
// A Builder accumulates pending field values separately from the aggregate.
// Build overlays exactly the fields that were set onto a fresh default, so
// untouched fields keep their zero value and building twice yields
// independent results. This package is the baseline that generated builder
// surfaces are measured against, so it deliberately depends on nothing.
package builder

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

// Item is the nested entity.
type Item struct {
	Number    uint8
	Boolean   bool
	String    string
	OptString *string
}

// Builder accumulates pending field values for a Root. A nil slot means the
// field was never set and keeps its default on Build.
type Builder struct {
	number    *uint8
	boolean   *bool
	str       *string
	optString *string
	optItem   *Item
	listItems []Item
	mapItems  map[string]Item
}

// ItemBuilder accumulates pending field values for an Item.
type ItemBuilder struct {
	number    *uint8
	boolean   *bool
	str       *string
	optString *string
}

// MakeBuilder returns a new Builder with no fields set.
func MakeBuilder() Builder {
	return Builder{}
}

// MakeItemBuilder returns a new ItemBuilder with no fields set.
func MakeItemBuilder() ItemBuilder {
	return ItemBuilder{}
}

// WithNumber sets the number field.
func (b Builder) WithNumber(number uint8) Builder {
	b.number = &number
	return b
}

// WithBoolean sets the boolean field.
func (b Builder) WithBoolean(boolean bool) Builder {
	b.boolean = &boolean
	return b
}

// WithString sets the string field.
func (b Builder) WithString(s string) Builder {
	b.str = &s
	return b
}

// WithOptString sets the optional string field to a present value.
func (b Builder) WithOptString(s string) Builder {
	b.optString = &s
	return b
}

// WithOptItem sets the optional item field to a present value.
func (b Builder) WithOptItem(item Item) Builder {
	b.optItem = &item
	return b
}

// WithOptItemFrom configures the optional item through its own builder, so
// the call site does not have to name the ItemBuilder type.
func (b Builder) WithOptItemFrom(build func(ItemBuilder) ItemBuilder) Builder {
	return b.WithOptItem(build(MakeItemBuilder()).Build())
}

// AddListItem appends an item to the pending list, initializing it on first
// use.
func (b Builder) AddListItem(item Item) Builder {
	items := make([]Item, 0, len(b.listItems)+1)
	items = append(items, b.listItems...)
	b.listItems = append(items, item)
	return b
}

// AddListItemFrom appends an item configured through its own builder.
func (b Builder) AddListItemFrom(build func(ItemBuilder) ItemBuilder) Builder {
	return b.AddListItem(build(MakeItemBuilder()).Build())
}

// PutMapItem inserts an item into the pending map under key, initializing
// the map on first use. Inserting an existing key overwrites its value.
func (b Builder) PutMapItem(key string, item Item) Builder {
	items := make(map[string]Item, len(b.mapItems)+1)
	for k, v := range b.mapItems {
		items[k] = v
	}
	items[key] = item
	b.mapItems = items
	return b
}

// PutMapItemFrom inserts an item configured through its own builder.
func (b Builder) PutMapItemFrom(key string, build func(ItemBuilder) ItemBuilder) Builder {
	return b.PutMapItem(key, build(MakeItemBuilder()).Build())
}

// Build overlays the pending fields onto a default Root. Build does not
// consume the builder; calling it again yields an equal but independent
// aggregate.
func (b Builder) Build() Root {
	var root Root

	if b.number != nil {
		root.Number = *b.number
	}

	if b.boolean != nil {
		root.Boolean = *b.boolean
	}

	if b.str != nil {
		root.String = *b.str
	}

	if b.optString != nil {
		s := *b.optString
		root.OptString = &s
	}

	if b.optItem != nil {
		item := *b.optItem
		root.OptItem = &item
	}

	if b.listItems != nil {
		root.ListItems = append([]Item(nil), b.listItems...)
	}

	if b.mapItems != nil {
		root.MapItems = make(map[string]Item, len(b.mapItems))
		for k, v := range b.mapItems {
			root.MapItems[k] = v
		}
	}

	return root
}

// WithNumber sets the number field.
func (b ItemBuilder) WithNumber(number uint8) ItemBuilder {
	b.number = &number
	return b
}

// WithBoolean sets the boolean field.
func (b ItemBuilder) WithBoolean(boolean bool) ItemBuilder {
	b.boolean = &boolean
	return b
}

// WithString sets the string field.
func (b ItemBuilder) WithString(s string) ItemBuilder {
	b.str = &s
	return b
}

// WithOptString sets the optional string field to a present value.
func (b ItemBuilder) WithOptString(s string) ItemBuilder {
	b.optString = &s
	return b
}

// Build overlays the pending fields onto a default Item.
func (b ItemBuilder) Build() Item {
	var item Item

	if b.number != nil {
		item.Number = *b.number
	}

	if b.boolean != nil {
		item.Boolean = *b.boolean
	}

	if b.str != nil {
		item.String = *b.str
	}

	if b.optString != nil {
		s := *b.optString
		item.OptString = &s
	}

	return item
}
