// Package migrations holds the PostgreSQL schema for campaigns, creatives,
// delivery counters and viewer streaks.
package migrations

import "embed"

// FS is read by golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects.
const Version = 1
