package memorymap

import "fmt"

const (
	major = 0
	minor = 2
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
