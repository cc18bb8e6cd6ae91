package ft6336

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"tinygo.org/x/drivers/tester"
)

// encodePoint packs a Point back into its raw register block, the inverse of
// decodePoint.
func encodePoint(p Point) [pointBlockLen]byte {
	return [pointBlockLen]byte{
		uint8(p.Event)<<6 | uint8(p.X>>8)&0x0F,
		uint8(p.X),
		p.ID<<4 | uint8(p.Y>>8)&0x0F,
		uint8(p.Y),
		p.Weight,
		p.Area << 4,
	}
}

func TestDecodePoint(t *testing.T) {
	c := qt.New(t)

	// Datasheet example: event flag in XH bits 7:6, coordinate high nibble
	// in XH bits 3:0, contact id in YH bits 7:4.
	p := decodePoint([pointBlockLen]byte{0x03, 0x20, 0x10, 0x47, 0x33, 0x50})
	c.Assert(p, qt.Equals, Point{
		ID:     1,
		Event:  EventPress,
		X:      0x320,
		Y:      0x047,
		Weight: 0x33,
		Area:   0x05,
	})

	p = decodePoint([pointBlockLen]byte{0x81, 0xFF, 0xAC, 0x00, 0x00, 0x00})
	c.Assert(p, qt.Equals, Point{
		ID:    0x0A,
		Event: EventContact,
		X:     0x1FF,
		Y:     0xC00,
	})
}

func TestDecodePointRoundTrip(t *testing.T) {
	c := qt.New(t)

	points := []Point{
		{},
		{ID: 1, Event: EventPress, X: 0x320, Y: 0x047},
		{ID: 0x0F, Event: EventLift, X: 0xFFF, Y: 0xFFF, Weight: 0xFF, Area: 0x0F},
		{ID: 3, Event: EventContact, X: 0x001, Y: 0x800, Weight: 0x10, Area: 0x02},
		{Event: EventNone, X: 0x123, Y: 0x456},
	}
	for _, want := range points {
		c.Assert(decodePoint(encodePoint(want)), qt.Equals, want)
	}
}

func TestTouchPointsSingle(t *testing.T) {
	c := qt.New(t)
	bus := tester.NewI2CBus(c)
	fake := tester.NewI2CDevice(c, DefaultAddress)
	fake.Registers[RegTouchStatus] = 1
	copy(fake.Registers[RegPoint1:], []byte{0x03, 0x20, 0x10, 0x47, 0x33, 0x50})
	bus.AddDevice(fake)

	dev := New(bus)
	c.Assert(dev.Configure(Config{}), qt.IsNil)

	pts, err := dev.TouchPoints()
	c.Assert(err, qt.IsNil)
	c.Assert(pts.Len(), qt.Equals, 1)

	p, ok := pts.Next()
	c.Assert(ok, qt.Equals, true)
	c.Assert(p.ID, qt.Equals, uint8(1))
	c.Assert(p.Event, qt.Equals, EventPress)
	c.Assert(p.X, qt.Equals, uint16(0x320))
	c.Assert(p.Y, qt.Equals, uint16(0x047))

	_, ok = pts.Next()
	c.Assert(ok, qt.Equals, false)
	c.Assert(pts.Len(), qt.Equals, 0)
}

func TestTouchPointsTwo(t *testing.T) {
	c := qt.New(t)
	bus := &busRecorder{}
	bus.regs[RegTouchStatus] = 2
	p0 := encodePoint(Point{ID: 0, Event: EventContact, X: 0x100, Y: 0x080})
	p1 := encodePoint(Point{ID: 1, Event: EventPress, X: 0x220, Y: 0x1A0})
	copy(bus.regs[RegPoint1:], p0[:])
	copy(bus.regs[RegPoint1+pointBlockLen:], p1[:])

	dev := New(bus)
	c.Assert(dev.Configure(Config{}), qt.IsNil)

	pts, err := dev.TouchPoints()
	c.Assert(err, qt.IsNil)
	c.Assert(pts.Len(), qt.Equals, 2)

	// Ascending contact-index order, status register first.
	first, _ := pts.Next()
	second, _ := pts.Next()
	c.Assert(first.ID, qt.Equals, uint8(0))
	c.Assert(second.ID, qt.Equals, uint8(1))
	c.Assert(bus.reads[1:], qt.DeepEquals, []uint8{RegTouchStatus, RegPoint1, RegPoint1 + pointBlockLen})
}

func TestTouchPointsNone(t *testing.T) {
	c := qt.New(t)
	bus := &busRecorder{}
	dev := New(bus)
	c.Assert(dev.Configure(Config{}), qt.IsNil)
	statusReads := len(bus.reads)

	pts, err := dev.TouchPoints()
	c.Assert(err, qt.IsNil)
	c.Assert(pts.Len(), qt.Equals, 0)
	_, ok := pts.Next()
	c.Assert(ok, qt.Equals, false)
	// No reads beyond the status register.
	c.Assert(bus.reads[statusReads:], qt.DeepEquals, []uint8{RegTouchStatus})
}

func TestTouchPointsInvalidCount(t *testing.T) {
	c := qt.New(t)

	// An out-of-range count is noise from the two-touches-one-row hardware
	// limitation: an empty frame, never an error or a truncated list.
	for _, count := range []uint8{3, 0x0F, 0xFF} {
		bus := &busRecorder{}
		bus.regs[RegTouchStatus] = count
		dev := New(bus)
		c.Assert(dev.Configure(Config{}), qt.IsNil)
		statusReads := len(bus.reads)

		pts, err := dev.TouchPoints()
		c.Assert(err, qt.IsNil)
		c.Assert(pts.Len(), qt.Equals, 0)
		c.Assert(bus.reads[statusReads:], qt.DeepEquals, []uint8{RegTouchStatus})
	}
}

func TestTouchPointsBusError(t *testing.T) {
	c := qt.New(t)
	bus := &busRecorder{}
	bus.regs[RegTouchStatus] = 2
	dev := New(bus)
	c.Assert(dev.Configure(Config{}), qt.IsNil)

	// Fail the second point-block read; the error surfaces as-is and no
	// partial frame is returned.
	bus.failAt = bus.ops + 3
	pts, err := dev.TouchPoints()
	c.Assert(err, qt.Equals, errBus)
	c.Assert(pts, qt.Equals, Points{})
}

func TestTouchCount(t *testing.T) {
	c := qt.New(t)
	bus := tester.NewI2CBus(c)
	fake := tester.NewI2CDevice(c, DefaultAddress)
	fake.Registers[RegTouchStatus] = 2
	bus.AddDevice(fake)

	dev := New(bus)
	c.Assert(dev.Configure(Config{}), qt.IsNil)

	n, err := dev.TouchCount()
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, uint8(2))
}
