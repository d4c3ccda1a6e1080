package global

import "fmt"

const Name = "lowpoint"

// Banner is the one-line identification printed by --version.
func Banner() string {
	if Dev {
		return fmt.Sprintf("%s %s (development build)", Name, Version)
	}

	return fmt.Sprintf("%s %s", Name, Version)
}
