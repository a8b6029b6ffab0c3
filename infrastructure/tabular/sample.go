package tabular

import "os"

// sampleCSV is the embedded fallback dataset. It proves the parser and
// analyzer path end to end without touching the filesystem or network.
const sampleCSV = `Item,Stretch
Subgrade,100-150
Subgrade,600-800
Subgrade,1400-1600
Embankment EW,100-150
Embankment EW,600-800
Embankment EW,1400-1600
`

// SampleCSV returns the embedded sample dataset.
func SampleCSV() string {
	return sampleCSV
}

// LoadSample returns sample CSV content. When path names a readable file its
// contents are used; otherwise the embedded literal is returned and fromFile
// is false. An unreachable sample file is never an error.
func LoadSample(path string) (content string, fromFile bool) {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return string(data), true
		}
	}
	return sampleCSV, false
}
