package sheetdeck

// Version is the sheetdeck release version.
const Version = "0.1.0"
