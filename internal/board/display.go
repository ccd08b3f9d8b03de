package board

import "fmt"

// displayTable holds the fixed-width labels of the console front end for
// ranks 0-13.
var displayTable = [...]string{
	"[    ]",
	"[  2 ]",
	"[  4 ]",
	"[  8 ]",
	"[ 16 ]",
	"[ 32 ]",
	"[ 64 ]",
	"[ 128]",
	"[ 256]",
	"[ 512]",
	"[1024]",
	"[2048]",
	"[4096]",
	"[8192]",
}

// Label returns the bracketed console label of a rank. Ranks beyond the
// table widen the brackets instead of truncating the value.
func (r Rank) Label() string {
	if r >= 0 && int(r) < len(displayTable) {
		return displayTable[r]
	}
	return fmt.Sprintf("[%d]", r.Value())
}
