package ft6336

// Register addresses of the FT6336. The map is fixed by the chip and shared
// across the FT6x36 family.
const (
	DefaultAddress = 0x38 // I2C address of the controller

	RegDeviceMode     = 0x00 // operating mode, working or factory
	RegGestureID      = 0x01 // gesture reported by the chip, if supported
	RegTouchStatus    = 0x02 // number of active touch points
	RegPoint1         = 0x03 // first touch-point block, pointBlockLen bytes
	RegTouchThreshold = 0x80 // touch detection threshold
	RegCtrl           = 0x86 // automatic switch to monitor mode
	RegMonitorDelay   = 0x87 // seconds of inactivity before monitor mode
	RegActiveRate     = 0x88 // scan rate in active mode, Hz
	RegMonitorRate    = 0x89 // scan rate in monitor mode, Hz
	RegFreqHopping    = 0x8B // frequency hopping enable
	RegChipCodeMid    = 0x9F // chip code, middle byte
	RegChipCodeLow    = 0xA0 // chip code, low byte
	RegLibVersion     = 0xA1 // app library version, two bytes, high first
	RegChipCodeHigh   = 0xA3 // chip code, high byte
	RegInterruptMode  = 0xA4 // INT pin behavior
	RegPowerMode      = 0xA5 // power mode
	RegFirmwareID     = 0xA6 // firmware version
	RegVendorID       = 0xA8 // FocalTech vendor ID
	RegReleaseCode    = 0xAF // release code on custom reference firmware
)

const (
	// Device-mode register values, held in bits 6:4.
	modeWorking = 0x00
	modeFactory = 0x40
	modeMask    = 0x70

	// XH, XL, YH, YL, weight, area.
	pointBlockLen = 6
)
