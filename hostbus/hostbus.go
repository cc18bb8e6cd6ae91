// Package hostbus adapts a periph.io I2C bus to the drivers.I2C interface,
// so the ft6336 driver runs on Linux boards (Raspberry Pi and similar) as
// well as on microcontrollers.
package hostbus

import (
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus wraps a periph.io I2C bus. The mutex serializes register transactions,
// so one Bus can be handed to several device drivers sharing the wire. Each
// transaction holds the bus only for its own duration.
type Bus struct {
	mu  sync.Mutex
	bus i2c.BusCloser
}

// Open initializes the periph host drivers and opens the named I2C bus. An
// empty name selects the first available bus.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	return &Bus{bus: b}, nil
}

func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.Tx(uint16(addr), []byte{reg}, buf)
}

func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	w := make([]byte, 0, len(buf)+1)
	w = append(w, reg)
	w = append(w, buf...)
	return b.bus.Tx(uint16(addr), w, nil)
}

func (b *Bus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bus.Tx(addr, w, r)
}

func (b *Bus) Close() error {
	return b.bus.Close()
}
