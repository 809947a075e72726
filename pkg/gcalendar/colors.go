package gcalendar

// The calendar API identifies event colors by string ids. The palette
// below mirrors the picker the service exposes; hex values are keys.
var colorIDs = map[string]string{
	"#EA4335": "11", // red
	"#E67C73": "4",  // salmon
	"#F6BF26": "6",  // orange
	"#FBBC05": "5",  // yellow
	"#34A853": "2",  // green
	"#0B8043": "10", // dark green
	"#4285F4": "1",  // blue
	"#3F51B5": "7",  // indigo
	"#7986CB": "9",  // light purple
	"#8E24AA": "3",  // purple
	"#616161": "8",  // gray
}

// DefaultColorID is used for colors outside the palette.
const DefaultColorID = "1"

// ColorID maps a palette hex value to the calendar API color id,
// falling back to DefaultColorID for unknown input.
func ColorID(hex string) string {
	if id, ok := colorIDs[hex]; ok {
		return id
	}
	return DefaultColorID
}
