package ft6336

// Event is the touch transition the chip reports for a point.
type Event uint8

const (
	EventPress   Event = iota // finger down since the previous frame
	EventLift                 // finger lifted
	EventContact              // finger still down
	EventNone                 // no event information
)

func (e Event) String() string {
	switch e {
	case EventPress:
		return "press"
	case EventLift:
		return "lift"
	case EventContact:
		return "contact"
	default:
		return "none"
	}
}

// Point is one active contact decoded from a single poll. It is only valid
// for the poll that produced it; tracking a touch across polls is the
// caller's concern, keyed by ID, which the chip keeps stable for the
// duration of a continuous touch.
type Point struct {
	ID     uint8
	Event  Event
	X      uint16
	Y      uint16
	Weight uint8 // touch pressure, zero on variants that don't report it
	Area   uint8 // touch area, zero on variants that don't report it
}

// Points holds the decoded result of one poll, consumed as a cursor. A new
// poll requires another TouchPoints call.
type Points struct {
	pts [MaxPoints]Point
	n   uint8
	pos uint8
}

// Len returns the number of points not yet consumed.
func (p *Points) Len() int {
	return int(p.n - p.pos)
}

// Next returns the next point in ascending contact-index order. ok is false
// once the frame is exhausted.
func (p *Points) Next() (pt Point, ok bool) {
	if p.pos >= p.n {
		return Point{}, false
	}
	pt = p.pts[p.pos]
	p.pos++
	return pt, true
}

// TouchCount reads the number of currently active touch points.
func (d *Device) TouchCount() (uint8, error) {
	return d.read8(RegTouchStatus)
}

// TouchPoints polls the chip once and returns the active touch points.
//
// The status register is read first; when it reports no touches, no further
// bus traffic happens. A count outside [1, MaxPoints] is noise (the chip
// produces it when two touches share a horizontal coordinate) and yields an
// empty frame rather than an error. Otherwise each point's register block is
// read in ascending index order. All reads happen here, so the returned
// points come from one snapshot and iterating them does not touch the bus.
// A bus failure is returned as-is, with no partial frame.
func (d *Device) TouchPoints() (Points, error) {
	n, err := d.read8(RegTouchStatus)
	if err != nil {
		return Points{}, err
	}
	if n == 0 || n > MaxPoints {
		return Points{}, nil
	}
	var p Points
	buf := [pointBlockLen]byte{}
	for i := uint8(0); i < n; i++ {
		err := d.bus.ReadRegister(d.addr, RegPoint1+i*pointBlockLen, buf[:])
		if err != nil {
			return Points{}, err
		}
		p.pts[i] = decodePoint(buf)
	}
	p.n = n
	return p, nil
}

// decodePoint unpacks one raw point block. The 12-bit coordinates span two
// bytes each: the low nibble of XH/YH holds bits 11:8 and XL/YL the low
// eight. The top two bits of XH carry the event flag, the top nibble of YH
// the contact id, and the top nibble of the last byte the touch area.
func decodePoint(b [pointBlockLen]byte) Point {
	return Point{
		ID:     b[2] >> 4,
		Event:  Event(b[0] >> 6),
		X:      uint16(b[0]&0x0F)<<8 | uint16(b[1]),
		Y:      uint16(b[2]&0x0F)<<8 | uint16(b[3]),
		Weight: b[4],
		Area:   b[5] >> 4,
	}
}
