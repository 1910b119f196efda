// Package sqlite implements the SQLite backend for the companion store: it
// owns the database file, creates or migrates the schema on Attach, seeds the
// default profile and quest catalog once, and exposes typed tables.
package sqlite

// DBName is the file name of the database inside the data directory.
const DBName = "virtual_companion.db"

// Schema versions:
// v6: user, quest (no timer_minutes), mood
// v7: quest.timer_minutes
// v8: accessory table
// v9: unique quest catalog index on (title, mood)
const (
	MinSchemaVersion     = 6
	CurrentSchemaVersion = 9
)

// Schema DDL. Every statement is safe to run against a store that already
// has the object.
const (
	createUser = `CREATE TABLE IF NOT EXISTS user (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    coins INTEGER NOT NULL DEFAULT 0,
    pet_gender TEXT NOT NULL CHECK (pet_gender IN ('male','female'))
);`

	createAccessory = `CREATE TABLE IF NOT EXISTS accessory (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    image INTEGER NOT NULL,
    price INTEGER NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('top','bottom','hat','glasses')),
    owned INTEGER NOT NULL DEFAULT 0 CHECK (owned IN (0,1)),
    equipped INTEGER NOT NULL DEFAULT 0 CHECK (equipped IN (0,1))
);`

	createQuest = `CREATE TABLE IF NOT EXISTS quest (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    reward INTEGER NOT NULL DEFAULT 0,
    timer_minutes INTEGER NOT NULL DEFAULT 5,
    progress INTEGER NOT NULL DEFAULT 0,
    rewarded INTEGER NOT NULL DEFAULT 0 CHECK (rewarded IN (0,1)),
    mood TEXT NOT NULL CHECK (mood IN ('neutral','happy','sad','angry','anxious'))
);`

	// createQuestV6 is the quest table before timer_minutes existed.
	createQuestV6 = `CREATE TABLE IF NOT EXISTS quest (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    description TEXT,
    reward INTEGER NOT NULL DEFAULT 0,
    progress INTEGER NOT NULL DEFAULT 0,
    rewarded INTEGER NOT NULL DEFAULT 0 CHECK (rewarded IN (0,1)),
    mood TEXT NOT NULL CHECK (mood IN ('neutral','happy','sad','angry','anxious'))
);`

	createMood = `CREATE TABLE IF NOT EXISTS mood (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    value INTEGER NOT NULL CHECK (value BETWEEN 1 AND 5),
    date TEXT NOT NULL
);`

	idxQuestCatalog = `CREATE UNIQUE INDEX IF NOT EXISTS idx_quest_catalog ON quest(title, mood);`
)

// schemaDDL returns the statements that create the structure of the given
// version from nothing.
func schemaDDL(version int) []string {
	ddl := []string{createUser}
	if version >= 8 {
		ddl = append(ddl, createAccessory)
	}
	if version >= 7 {
		ddl = append(ddl, createQuest)
	} else {
		ddl = append(ddl, createQuestV6)
	}
	ddl = append(ddl, createMood)
	if version >= 9 {
		ddl = append(ddl, idxQuestCatalog)
	}
	return ddl
}
