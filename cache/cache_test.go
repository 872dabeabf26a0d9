package cache

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCacheEviction(t *testing.T) {
	Convey("Given a cache with capacity 3", t, func() {
		c := New[int](3)

		Convey("After capacity+1 distinct sets, the first key is evicted", func() {
			for i := 0; i < 4; i++ {
				c.Set(fmt.Sprintf("k%d", i), i)
			}

			So(c.Contains("k0"), ShouldBeFalse)
			So(c.Contains("k1"), ShouldBeTrue)
			So(c.Contains("k2"), ShouldBeTrue)
			So(c.Contains("k3"), ShouldBeTrue)
			So(c.Stats().Size, ShouldEqual, 3)
		})

		Convey("A get promotes the entry to most-recently-used", func() {
			c.Set("a", 1)
			c.Set("b", 2)
			c.Set("c", 3)

			_, ok := c.Get("a")
			So(ok, ShouldBeTrue)

			// "b" is now the LRU entry and must be the one evicted.
			c.Set("d", 4)
			So(c.Contains("a"), ShouldBeTrue)
			So(c.Contains("b"), ShouldBeFalse)
		})

		Convey("Size never exceeds capacity", func() {
			for i := 0; i < 50; i++ {
				c.Set(fmt.Sprintf("k%d", i), i)
			}
			So(c.Stats().Size, ShouldBeLessThanOrEqualTo, 3)
		})
	})
}

func TestCacheStats(t *testing.T) {
	Convey("Given a cache", t, func() {
		c := New[string](2)

		Convey("Hits and misses are counted", func() {
			c.Set("x", "y")

			_, ok := c.Get("x")
			So(ok, ShouldBeTrue)
			_, ok = c.Get("absent")
			So(ok, ShouldBeFalse)

			stats := c.Stats()
			So(stats.Hits, ShouldEqual, 1)
			So(stats.Misses, ShouldEqual, 1)
			So(stats.Capacity, ShouldEqual, 2)
		})

		Convey("Clear resets storage and counters together", func() {
			c.Set("x", "y")
			c.Get("x")
			c.Get("absent")

			c.Clear()

			stats := c.Stats()
			So(stats.Hits, ShouldEqual, 0)
			So(stats.Misses, ShouldEqual, 0)
			So(stats.Size, ShouldEqual, 0)
			So(c.Contains("x"), ShouldBeFalse)
		})
	})
}

func TestCacheDegenerateCapacity(t *testing.T) {
	Convey("A non-positive capacity is raised to one", t, func() {
		c := New[int](0)
		c.Set("a", 1)
		c.Set("b", 2)
		So(c.Stats().Size, ShouldEqual, 1)
		So(c.Stats().Capacity, ShouldEqual, 1)
	})
}
