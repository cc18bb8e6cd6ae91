// Package ft6336 provides a driver for the FocalTech FT6336 family of
// capacitive touch controllers (FT6236G, FT6336G, FT6336U, FT6426), commonly
// found on small TFT touchscreens such as the M5Stack Core2.
//
// The sensing hardware cannot resolve two simultaneous touches that share the
// same horizontal coordinate; in that case the chip reports a merged or
// dropped point and sometimes an out-of-range touch count. The driver
// surfaces exactly what the chip reports and does not try to reconstruct the
// missing touch.
//
// The driver performs no locking. When the bus is shared between drivers or
// goroutines, the caller serializes access, for example with a bus wrapper
// like the hostbus package.
//
// Datasheet: https://www.buydisplay.com/download/ic/FT6236-FT6336-FT6436L-FT6436_Datasheet.pdf
package ft6336

import (
	"errors"

	"tinygo.org/x/drivers"
)

// MaxPoints is the number of simultaneous touches the chip can track.
const MaxPoints = 2

var (
	// ErrModeSwitch means the chip did not confirm the switch to working
	// mode. Configure may be called again to retry.
	ErrModeSwitch = errors.New("ft6336: working mode not confirmed")

	// ErrInvalidInterruptMode means SetInterruptMode was called with a value
	// outside the enumerated modes. No bus access is attempted.
	ErrInvalidInterruptMode = errors.New("ft6336: invalid interrupt mode")
)

type Device struct {
	bus  drivers.I2C
	addr uint8
}

type Config struct {
	Address uint8
}

// InterruptMode selects the behavior of the INT pin. In either interrupt
// mode the chip does not signal touch-release events.
type InterruptMode uint8

const (
	// InterruptLevel drives INT low for as long as touch data is pending.
	InterruptLevel InterruptMode = iota
	// InterruptPulse emits a pulse on INT for each new touch event.
	InterruptPulse
	// InterruptPolling leaves INT in level mode for hosts that ignore the
	// pin and poll TouchPoints instead.
	InterruptPolling
)

// PowerMode selects the chip's scan/power state.
type PowerMode uint8

const (
	PowerActive PowerMode = iota
	PowerMonitor
	PowerStandby
	PowerHibernate
)

// New creates a new FT6336 driver on the provided I2C bus. The bus must
// already be configured.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus: bus,
	}
}

// Configure sets the device address and ensures the chip is in working mode.
// The controller occasionally comes out of reset in factory mode, where the
// touch registers hold calibration data instead of touch points. Configure
// writes the working-mode value and reads it back once; if the chip does not
// confirm the switch it returns ErrModeSwitch, and the caller may call
// Configure again.
func (d *Device) Configure(c Config) error {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	d.addr = c.Address

	mode, err := d.read8(RegDeviceMode)
	if err != nil {
		return err
	}
	if mode&modeMask == modeWorking {
		return nil
	}
	err = d.write8(RegDeviceMode, modeWorking)
	if err != nil {
		return err
	}
	mode, err = d.read8(RegDeviceMode)
	if err != nil {
		return err
	}
	if mode&modeMask != modeWorking {
		return ErrModeSwitch
	}
	return nil
}

// SetInterruptMode configures the INT pin behavior. The mode is validated
// before any bus traffic happens.
func (d *Device) SetInterruptMode(mode InterruptMode) error {
	var val uint8
	switch mode {
	case InterruptLevel, InterruptPolling:
		val = 0x00
	case InterruptPulse:
		val = 0x01
	default:
		return ErrInvalidInterruptMode
	}
	return d.write8(RegInterruptMode, val)
}

// ChipCode returns the three chip code bytes identifying the controller
// variant. The low byte is 0x00 for the FT6236G, 0x01 for the FT6336G,
// 0x02 for the FT6336U and 0x03 for the FT6426.
func (d *Device) ChipCode() (low, mid, high uint8, err error) {
	low, err = d.read8(RegChipCodeLow)
	if err != nil {
		return 0, 0, 0, err
	}
	mid, err = d.read8(RegChipCodeMid)
	if err != nil {
		return 0, 0, 0, err
	}
	high, err = d.read8(RegChipCodeHigh)
	if err != nil {
		return 0, 0, 0, err
	}
	return low, mid, high, nil
}

// LibVersion returns the app library version.
func (d *Device) LibVersion() (major, minor uint8, err error) {
	buf := [2]byte{}
	err = d.bus.ReadRegister(d.addr, RegLibVersion, buf[:])
	return buf[0], buf[1], err
}

// FirmwareVersion returns the firmware version byte.
func (d *Device) FirmwareVersion() (uint8, error) {
	return d.read8(RegFirmwareID)
}

// VendorID returns the FocalTech vendor ID.
func (d *Device) VendorID() (uint8, error) {
	return d.read8(RegVendorID)
}

// ReleaseCode returns the release code of custom reference firmware.
func (d *Device) ReleaseCode() (uint8, error) {
	return d.read8(RegReleaseCode)
}

// SetFrequencyHopping enables or disables frequency hopping, which can help
// when the panel picks up charger noise. Most setups don't need it.
func (d *Device) SetFrequencyHopping(on bool) error {
	return d.write8(RegFreqHopping, boolByte(on))
}

// SetAutoMonitorMode sets whether the chip drops into monitor mode (a
// simpler, lower-power scan) on its own after a period without touches.
func (d *Device) SetAutoMonitorMode(on bool) error {
	return d.write8(RegCtrl, boolByte(on))
}

// SetMonitorDelay sets the seconds of inactivity before the chip enters
// monitor mode. The chip accepts at most 0x64; larger values are clamped.
func (d *Device) SetMonitorDelay(seconds uint8) error {
	if seconds > 0x64 {
		seconds = 0x64
	}
	return d.write8(RegMonitorDelay, seconds)
}

// SetActiveRate sets the scan rate in active mode, in Hertz, clamped to the
// chip's supported range of 0x04 to 0x14.
func (d *Device) SetActiveRate(hz uint8) error {
	return d.write8(RegActiveRate, clampRate(hz))
}

// SetMonitorRate sets the scan rate in monitor mode, in Hertz, clamped to
// the chip's supported range of 0x04 to 0x14.
func (d *Device) SetMonitorRate(hz uint8) error {
	return d.write8(RegMonitorRate, clampRate(hz))
}

// SetPowerMode sets the chip's power mode.
func (d *Device) SetPowerMode(mode PowerMode) error {
	return d.write8(RegPowerMode, uint8(mode))
}

// SetTouchThreshold sets the touch detection threshold. Lower values make
// the panel more sensitive.
func (d *Device) SetTouchThreshold(threshold uint8) error {
	return d.write8(RegTouchThreshold, threshold)
}

func clampRate(hz uint8) uint8 {
	if hz < 0x04 {
		return 0x04
	}
	if hz > 0x14 {
		return 0x14
	}
	return hz
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (d *Device) read8(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.addr, reg, buf[:])
	return buf[0], err
}

func (d *Device) write8(reg, val uint8) error {
	buf := [1]byte{val}
	return d.bus.WriteRegister(d.addr, reg, buf[:])
}
