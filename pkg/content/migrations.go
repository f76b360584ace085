package content

import (
	"embed"
	"io/fs"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations returns the schema for the content tables, rooted so that
// db.Migrate finds the files at ".".
func Migrations() fs.FS {
	sub, err := fs.Sub(migrations, "migrations")
	if err != nil {
		// Only fails if the embed pattern above is broken.
		panic(err)
	}
	return sub
}
