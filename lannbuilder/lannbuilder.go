// Package lannbuilder builds the demonstration data model on top of
// github.com/lann/builder, the reflection-backed immutable builder library.
//
// Summary of the approach, compared to the hand-written blueprint:
//
// Pros:
//   - One Set/Append call per field method; no per-field slot bookkeeping.
//   - Builders are immutable values, so partial chains can be shared and
//     forked freely.
//
// Cons:
//   - Field names are strings resolved by reflection, unchecked at compile
//     time.
//   - Build is fallible: unset required fields are reported as an error, so
//     every terminal call carries an error path the blueprint does not have.
//   - No nested-builder helpers; nested values must be built and passed in.
//   - Map fields have no native accumulator and are re-set wholesale.
package lannbuilder

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/lann/builder"
)

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

// RootBuilder is an immutable builder for Root. Its zero value is ready to
// use. Number, Boolean and String are required; Build reports all missing
// required fields at once.
type RootBuilder builder.Builder

// ItemBuilder is an immutable builder for Item. Number is required.
type ItemBuilder builder.Builder

func init() {
	builder.Register(RootBuilder{}, Root{})
	builder.Register(ItemBuilder{}, Item{})
}

// Number sets the number field.
func (b RootBuilder) Number(number uint8) RootBuilder {
	return builder.Set(b, "Number", number).(RootBuilder)
}

// Boolean sets the boolean field.
func (b RootBuilder) Boolean(boolean bool) RootBuilder {
	return builder.Set(b, "Boolean", boolean).(RootBuilder)
}

// String sets the string field.
func (b RootBuilder) String(s string) RootBuilder {
	return builder.Set(b, "String", s).(RootBuilder)
}

// OptString sets the optional string field to a present value.
func (b RootBuilder) OptString(s string) RootBuilder {
	return builder.Set(b, "OptString", &s).(RootBuilder)
}

// OptItem sets the optional item field to a present value.
func (b RootBuilder) OptItem(item Item) RootBuilder {
	return builder.Set(b, "OptItem", &item).(RootBuilder)
}

// ListItem appends an item to the list field.
func (b RootBuilder) ListItem(item Item) RootBuilder {
	return builder.Append(b, "ListItems", item).(RootBuilder)
}

// MapItem inserts an item into the map field under key, overwriting any
// existing entry. The map is copied and re-set on every call because the
// underlying library only tracks whole-field values.
func (b RootBuilder) MapItem(key string, item Item) RootBuilder {
	items := make(map[string]Item)
	if v, ok := builder.Get(b, "MapItems"); ok {
		for k, existing := range v.(map[string]Item) {
			items[k] = existing
		}
	}
	items[key] = item
	return builder.Set(b, "MapItems", items).(RootBuilder)
}

// Build materializes the Root, or reports every unset required field.
func (b RootBuilder) Build() (Root, error) {
	var merr *multierror.Error
	for _, field := range []string{"Number", "Boolean", "String"} {
		if _, ok := builder.Get(b, field); !ok {
			merr = multierror.Append(merr, fmt.Errorf("required field %s is not set", field))
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return Root{}, err
	}
	return builder.GetStruct(b).(Root), nil
}

// MustBuild is Build, panicking instead of returning an error.
func (b RootBuilder) MustBuild() Root {
	root, err := b.Build()
	if err != nil {
		panic(err)
	}
	return root
}

// Number sets the number field.
func (b ItemBuilder) Number(number uint8) ItemBuilder {
	return builder.Set(b, "Number", number).(ItemBuilder)
}

// Build materializes the Item, or reports the unset required field.
func (b ItemBuilder) Build() (Item, error) {
	if _, ok := builder.Get(b, "Number"); !ok {
		return Item{}, fmt.Errorf("required field Number is not set")
	}
	return builder.GetStruct(b).(Item), nil
}

// MustBuild is Build, panicking instead of returning an error.
func (b ItemBuilder) MustBuild() Item {
	item, err := b.Build()
	if err != nil {
		panic(err)
	}
	return item
}
