package sqlite

const schemaSQL = `
CREATE TABLE IF NOT EXISTS sessions (
	profile    TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	cookies    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`
