package builder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func strPtr(s string) *string {
	return &s
}

var _ = Describe("Builder", func() {
	var b Builder

	BeforeEach(func() {
		b = MakeBuilder()
	})

	It("should build the default root when nothing is set", func() {
		Expect(b.Build()).To(Equal(Root{}))
	})

	It("should set scalar fields", func() {
		root := b.
			WithNumber(42).
			WithBoolean(true).
			WithString("foo").
			Build()

		Expect(root.Number).To(Equal(uint8(42)))
		Expect(root.Boolean).To(BeTrue())
		Expect(root.String).To(Equal("foo"))
	})

	It("should keep the last value when a scalar is set twice", func() {
		root := b.WithNumber(1).WithNumber(2).Build()

		Expect(root.Number).To(Equal(uint8(2)))
	})

	It("should set the optional string as present", func() {
		root := b.WithOptString("bar").Build()

		Expect(root.OptString).To(Equal(strPtr("bar")))
	})

	It("should set the optional item as present", func() {
		root := b.WithOptItem(Item{Number: 1}).Build()

		Expect(root.OptItem).To(Equal(&Item{Number: 1}))
	})

	It("should configure the optional item through a nested builder", func() {
		root := b.
			WithOptItemFrom(func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(2)
			}).
			Build()

		Expect(root.OptItem).To(Equal(&Item{Number: 2}))
	})

	It("should preserve list append order", func() {
		root := b.
			AddListItem(Item{Number: 1}).
			AddListItem(Item{Number: 2}).
			AddListItemFrom(func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(3)
			}).
			Build()

		Expect(root.ListItems).To(Equal([]Item{
			{Number: 1},
			{Number: 2},
			{Number: 3},
		}))
	})

	It("should overwrite map entries by key", func() {
		root := b.
			PutMapItem("k", Item{Number: 1}).
			PutMapItem("k", Item{Number: 2}).
			Build()

		Expect(root.MapItems).To(HaveLen(1))
		Expect(root.MapItems["k"]).To(Equal(Item{Number: 2}))
	})

	It("should configure map entries through a nested builder", func() {
		root := b.
			PutMapItemFrom("foobar", func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(4)
			}).
			Build()

		Expect(root.MapItems).To(Equal(map[string]Item{
			"foobar": {Number: 4},
		}))
	})

	It("should leave untouched collections at their defaults", func() {
		root := b.WithNumber(1).Build()

		Expect(root.ListItems).To(BeNil())
		Expect(root.MapItems).To(BeNil())
	})

	It("should build twice with independent results", func() {
		built := b.
			AddListItem(Item{Number: 1}).
			PutMapItem("k", Item{Number: 1})

		first := built.Build()
		second := built.Build()

		Expect(first).To(Equal(second))

		first.ListItems[0] = Item{Number: 9}
		first.MapItems["k"] = Item{Number: 9}

		Expect(second.ListItems[0]).To(Equal(Item{Number: 1}))
		Expect(second.MapItems["k"]).To(Equal(Item{Number: 1}))
	})

	It("should not leak later contributions into earlier builds", func() {
		partial := b.AddListItem(Item{Number: 1})
		before := partial.Build()

		partial.AddListItem(Item{Number: 2})

		Expect(before.ListItems).To(Equal([]Item{{Number: 1}}))
	})

	It("should build the end-to-end scenario", func() {
		actual := b.
			WithNumber(1).
			WithBoolean(true).
			WithString("foo").
			WithOptString("bar").
			WithOptItemFrom(func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(2)
			}).
			AddListItemFrom(func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(3)
			}).
			PutMapItemFrom("foobar", func(i ItemBuilder) ItemBuilder {
				return i.WithNumber(4)
			}).
			Build()

		expected := Root{
			Number:    1,
			Boolean:   true,
			String:    "foo",
			OptString: strPtr("bar"),
			OptItem:   &Item{Number: 2},
			ListItems: []Item{{Number: 3}},
			MapItems:  map[string]Item{"foobar": {Number: 4}},
		}

		Expect(actual).To(Equal(expected))
	})
})

var _ = Describe("ItemBuilder", func() {
	It("should build the default item when nothing is set", func() {
		Expect(MakeItemBuilder().Build()).To(Equal(Item{}))
	})

	It("should set all parity fields", func() {
		item := MakeItemBuilder().
			WithNumber(1).
			WithBoolean(true).
			WithString("foo").
			WithOptString("bar").
			Build()

		Expect(item).To(Equal(Item{
			Number:    1,
			Boolean:   true,
			String:    "foo",
			OptString: strPtr("bar"),
		}))
	})
})
