package constants

import "os"

func GetDataDir() string {
	path := os.Getenv("FRETWISE_DATA")
	if path != "" {
		return path
	}
	return "./data"
}

const NumStrings = 6

const DefaultFrets = 24

// Open-string MIDI values for standard tuning, high E first (the order
// strings appear in tab).
var OpenStringValues = [NumStrings]int{64, 59, 55, 50, 45, 40}

var OpenStringNames = [NumStrings]string{"E", "B", "G", "D", "A", "E"}
