package wordbank

import "github.com/abhisek/vocabquiz/internal/quiz"

// SQLite schema and the query shared by the SQL backends. Positions keep
// the source order of categories and entries, which question ids are
// derived from.
const (
	sqliteCategoriesTable = `CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		position INTEGER NOT NULL
	)`

	sqliteWordsTable = `CREATE TABLE IF NOT EXISTS words (
		category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		definition TEXT NOT NULL,
		answer TEXT NOT NULL,
		PRIMARY KEY (category_id, position)
	)`

	selectWords = `SELECT c.name, w.definition, w.answer
		FROM categories c
		LEFT JOIN words w ON w.category_id = c.id
		ORDER BY c.position, w.position`
)

// rowScanner is satisfied by both *sql.Rows and pgx.Rows.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// collectRows groups ordered (category, definition, answer) rows into
// RawData. A category with no words yields a NULL definition and answer.
func collectRows(rows rowScanner) (quiz.RawData, error) {
	var raw quiz.RawData
	for rows.Next() {
		var name string
		var def, ans *string
		if err := rows.Scan(&name, &def, &ans); err != nil {
			return nil, err
		}
		if len(raw) == 0 || raw[len(raw)-1].Name != name {
			raw = append(raw, quiz.CategoryData{Name: name})
		}
		if def == nil && ans == nil {
			continue
		}
		cat := &raw[len(raw)-1]
		cat.Entries = append(cat.Entries, quiz.Entry{
			Definition: deref(def),
			Answer:     deref(ans),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return raw, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
