package chisel

import (
	"os"
	"strings"

	"go.trai.ch/zerr"
)

const osReleasePath = "/etc/os-release"

// HostRelease derives the default release tag from the host, e.g.
// "ubuntu-24.04". Used when no release flag is given.
func HostRelease() (string, error) {
	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to read os-release")
	}
	return releaseFromOSRelease(string(data))
}

func releaseFromOSRelease(content string) (string, error) {
	id, version := "", ""
	for _, line := range strings.Split(content, "\n") {
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			id = value
		case "VERSION_ID":
			version = value
		}
	}
	if id == "" || version == "" {
		return "", zerr.New("os-release is missing ID or VERSION_ID")
	}
	return id + "-" + version, nil
}
