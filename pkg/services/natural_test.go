package services

import (
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNaturalLess(t *testing.T) {
	Convey("naturalLess", t, func() {
		So(naturalLess("Game Review 2", "Game Review 10"), ShouldBeTrue)
		So(naturalLess("Game Review 10", "Game Review 2"), ShouldBeFalse)
		So(naturalLess("game review 1", "Game Review 1"), ShouldBeFalse)
		So(naturalLess("Piano", "Piano Cover"), ShouldBeTrue)
		So(naturalLess("Piano Cover", "Piano"), ShouldBeFalse)
		So(naturalLess("same", "same"), ShouldBeFalse)

		titles := []string{"Tech News 100", "Tech News 9", "Gadget Unboxing 3", "Tech News 10"}
		sort.Slice(titles, func(i, j int) bool { return naturalLess(titles[i], titles[j]) })
		So(titles, ShouldResemble, []string{"Gadget Unboxing 3", "Tech News 9", "Tech News 10", "Tech News 100"})
	})
}
