package migration

import "context"

// Migrators maps a version name to its migrator. Versions are applied
// manually through the migrate command; "auto" recreates the full schema and
// makes running the numbered versions unnecessary.
var Migrators = map[string]func(context.Context) error{
	"0000": migrate0000,
	"auto": AutoMigrate,
}
