// Package funcopt builds the demonstration data model with functional
// options, the construction surface Go option generators emit.
//
// Summary of the approach, compared to the hand-written blueprint:
//
// Pros:
//   - No builder type at all; options are plain closures over the target.
//   - Unset fields keep their zero value with no slot tracking.
//   - Construction is a single variadic call and cannot fail.
//
// Cons:
//   - No chain handle; options cannot be added after New returns.
//   - Option lists are easy to build programmatically but read less
//     fluently than a method chain.
package funcopt

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
	Number uint8
}

// Option mutates a Root under construction.
type Option func(*Root)

// ItemOption mutates an Item under construction.
type ItemOption func(*Item)

// New constructs a Root by applying the options, in order, to a default
// value.
func New(opts ...Option) Root {
	var root Root
	for _, opt := range opts {
		opt(&root)
	}
	return root
}

// NewItem constructs an Item by applying the options, in order, to a
// default value.
func NewItem(opts ...ItemOption) Item {
	var item Item
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

// Number sets the number field.
func Number(number uint8) Option {
	return func(r *Root) {
		r.Number = number
	}
}

// Boolean sets the boolean field.
func Boolean(boolean bool) Option {
	return func(r *Root) {
		r.Boolean = boolean
	}
}

// String sets the string field.
func String(s string) Option {
	return func(r *Root) {
		r.String = s
	}
}

// OptString sets the optional string field to a present value.
func OptString(s string) Option {
	return func(r *Root) {
		r.OptString = &s
	}
}

// OptItem sets the optional item field to a present value.
func OptItem(item Item) Option {
	return func(r *Root) {
		r.OptItem = &item
	}
}

// OptItemWith sets the optional item field to a value constructed from item
// options.
func OptItemWith(opts ...ItemOption) Option {
	return OptItem(NewItem(opts...))
}

// ListItem appends an item to the list field.
func ListItem(item Item) Option {
	return func(r *Root) {
		r.ListItems = append(r.ListItems, item)
	}
}

// ListItemWith appends an item constructed from item options.
func ListItemWith(opts ...ItemOption) Option {
	return ListItem(NewItem(opts...))
}

// MapItem inserts an item into the map field under key, overwriting any
// existing entry.
func MapItem(key string, item Item) Option {
	return func(r *Root) {
		if r.MapItems == nil {
			r.MapItems = make(map[string]Item)
		}
		r.MapItems[key] = item
	}
}

// MapItemWith inserts an item constructed from item options under key.
func MapItemWith(key string, opts ...ItemOption) Option {
	return MapItem(key, NewItem(opts...))
}

// ItemNumber sets the number field of an item.
func ItemNumber(number uint8) ItemOption {
	return func(i *Item) {
		i.Number = number
	}
}
