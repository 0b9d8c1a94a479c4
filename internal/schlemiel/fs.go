package schlemiel

import (
	"fmt"
	"os"
)

const db = "db"

var (
	HostRootPath   = fmt.Sprintf("%s/.schlemiel", os.Getenv("HOME"))
	HostDBFilename = fmt.Sprintf("%s/%s", HostRootPath, db)
)

// DBFilename honors the SCHLEMIEL_DB override.
func DBFilename() string {
	if p := os.Getenv("SCHLEMIEL_DB"); p != "" {
		return p
	}
	return HostDBFilename
}
