package catalog_test

import (
	"testing"

	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		c := catalog.Default()

		Convey("Then it should be large enough for no-repeat play", func() {
			So(c.Len(), ShouldBeGreaterThanOrEqualTo, 12)
		})

		Convey("Then every id should be unique", func() {
			seen := make(map[string]bool)
			for _, r := range c.All() {
				So(seen[r.ID], ShouldBeFalse)
				seen[r.ID] = true
			}
		})

		Convey("Then every category should hold at least four aircraft", func() {
			for _, cat := range catalog.Categories() {
				So(len(c.Filter(cat)), ShouldBeGreaterThanOrEqualTo, 4)
			}
		})

		Convey("Then every record should carry a model and a fact", func() {
			for _, r := range c.All() {
				So(r.Model, ShouldNotBeEmpty)
				So(r.Fact, ShouldNotBeEmpty)
				So(r.Category.Valid(), ShouldBeTrue)
			}
		})
	})
}

func TestNewValidation(t *testing.T) {
	Convey("Given catalog construction", t, func() {
		valid := []catalog.Record{
			{ID: "a", Model: "A", Category: catalog.CategoryCommercial},
			{ID: "b", Model: "B", Category: catalog.CategoryMilitary},
			{ID: "c", Model: "C", Category: catalog.CategoryVintage},
			{ID: "d", Model: "D", Category: catalog.CategoryGeneral},
		}

		Convey("When the records are valid", func() {
			c, err := catalog.New(valid...)
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 4)
		})

		Convey("When there are fewer than four records", func() {
			_, err := catalog.New(valid[:3]...)
			So(err, ShouldWrap, catalog.ErrTooSmall)
		})

		Convey("When an id is duplicated", func() {
			dup := append([]catalog.Record{}, valid...)
			dup[3].ID = "a"
			_, err := catalog.New(dup...)
			So(err, ShouldWrap, catalog.ErrDuplicateID)
		})

		Convey("When an id is empty", func() {
			bad := append([]catalog.Record{}, valid...)
			bad[0].ID = "  "
			_, err := catalog.New(bad...)
			So(err, ShouldWrap, catalog.ErrEmptyID)
		})

		Convey("When a category is unknown", func() {
			bad := append([]catalog.Record{}, valid...)
			bad[1].Category = "spaceship"
			_, err := catalog.New(bad...)
			So(err, ShouldWrap, catalog.ErrUnknownCategory)
		})
	})
}

func TestFilterAndLookup(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		c := catalog.Default()

		Convey("When filtering by a single category", func() {
			military := c.Filter(catalog.CategoryMilitary)

			Convey("Then only that category is returned", func() {
				So(len(military), ShouldBeGreaterThan, 0)
				for _, r := range military {
					So(r.Category, ShouldEqual, catalog.CategoryMilitary)
				}
			})
		})

		Convey("When filtering with no categories", func() {
			So(len(c.Filter()), ShouldEqual, c.Len())
		})

		Convey("When looking up a known id", func() {
			r, ok := c.ByID("b747")
			So(ok, ShouldBeTrue)
			So(r.Model, ShouldEqual, "Boeing 747")
		})

		Convey("When looking up an unknown id", func() {
			_, ok := c.ByID("does-not-exist")
			So(ok, ShouldBeFalse)
		})

		Convey("When a record has no lookup title", func() {
			r, _ := c.ByID("b747")
			So(r.Lookup(), ShouldEqual, "Boeing 747")
		})

		Convey("When a record has an alternate lookup title", func() {
			r, _ := c.ByID("f22")
			So(r.Lookup(), ShouldEqual, "Lockheed Martin F-22 Raptor")
		})
	})
}

func TestParseCategory(t *testing.T) {
	Convey("Given category parsing", t, func() {
		Convey("When the input is valid", func() {
			c, err := catalog.ParseCategory("  Military ")
			So(err, ShouldBeNil)
			So(c, ShouldEqual, catalog.CategoryMilitary)
		})

		Convey("When the input is unknown", func() {
			_, err := catalog.ParseCategory("naval")
			So(err, ShouldWrap, catalog.ErrUnknownCategory)
		})
	})
}
