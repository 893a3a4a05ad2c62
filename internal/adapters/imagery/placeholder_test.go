package imagery_test

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/nahubn1/airplane-recognition-quiz/internal/adapters/imagery"
	"github.com/nahubn1/airplane-recognition-quiz/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlaceholder(t *testing.T) {
	Convey("Given a model and category", t, func() {
		Convey("When synthesizing a placeholder", func() {
			uri := imagery.Placeholder("Spitfire", catalog.CategoryVintage)

			Convey("Then the result is a decodable SVG data URI naming the model", func() {
				So(uri, ShouldStartWith, "data:image/svg+xml;base64,")

				raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
				So(err, ShouldBeNil)

				svg := string(raw)
				So(svg, ShouldContainSubstring, "<svg")
				So(svg, ShouldContainSubstring, "Spitfire")
				So(svg, ShouldContainSubstring, "vintage")
			})

			Convey("And the output is deterministic", func() {
				So(imagery.Placeholder("Spitfire", catalog.CategoryVintage), ShouldEqual, uri)
			})
		})

		Convey("When the model contains markup characters", func() {
			uri := imagery.Placeholder(`A<B>&"C"`, catalog.CategoryGeneral)
			raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/svg+xml;base64,"))
			So(err, ShouldBeNil)

			Convey("Then the text is escaped", func() {
				svg := string(raw)
				So(svg, ShouldContainSubstring, "&lt;B&gt;")
				So(svg, ShouldNotContainSubstring, "<B>")
			})
		})
	})
}
