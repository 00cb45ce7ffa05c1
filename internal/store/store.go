// ./internal/store/store.go

// Package store persists precise ayanamsa results in a SQLite database so
// repeated requests skip the external source across restarts.
package store

/*
Package store provides the SQLite-backed ayanamsa cache.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation; either version 2
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program; if not, write to the Free Software
Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA
02110-1301, USA.

Authorship:
Mohammad Shafiee authored this Go code.
*/

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mshafiee/jyotish/ayanamsa"
)

// DB is a SQLite-backed ayanamsa.Cache. It is safe for concurrent use.
type DB struct {
	sql *sql.DB
	log logrus.FieldLogger
}

var _ ayanamsa.Cache = (*DB)(nil)

// Open opens or creates the cache database at path.
func Open(path string, log logrus.FieldLogger) (*DB, error) {
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS ayanamsa_cache (
  standard   TEXT NOT NULL,
  jd         REAL NOT NULL,
  value      REAL NOT NULL,
  created_at INTEGER NOT NULL,
  PRIMARY KEY (standard, jd)
);
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &DB{sql: db, log: log}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

// Get implements ayanamsa.Cache. Lookup failures count as misses.
func (d *DB) Get(ctx context.Context, std ayanamsa.Standard, jd float64) (float64, bool) {
	var v float64
	err := d.sql.QueryRowContext(ctx,
		`SELECT value FROM ayanamsa_cache WHERE standard = ? AND jd = ?`, string(std), jd).Scan(&v)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			d.log.WithError(err).WithField("jd", jd).Warn("ayanamsa cache lookup failed")
		}
		return 0, false
	}
	return v, true
}

// Put implements ayanamsa.Cache. Write failures are logged and dropped.
func (d *DB) Put(ctx context.Context, std ayanamsa.Standard, jd, value float64) {
	_, err := d.sql.ExecContext(ctx, `
INSERT INTO ayanamsa_cache (standard, jd, value, created_at) VALUES (?, ?, ?, ?)
ON CONFLICT(standard, jd) DO UPDATE SET value = excluded.value, created_at = excluded.created_at`,
		string(std), jd, value, time.Now().Unix())
	if err != nil {
		d.log.WithError(err).WithField("jd", jd).Warn("ayanamsa cache write failed")
	}
}

// Stats summarizes the cache contents per standard.
type Stats struct {
	Standard ayanamsa.Standard
	Entries  int
	MinJD    float64
	MaxJD    float64
}

// Stats returns one row per cached standard.
func (d *DB) Stats(ctx context.Context) ([]Stats, error) {
	rows, err := d.sql.QueryContext(ctx, `
SELECT standard, COUNT(*), MIN(jd), MAX(jd) FROM ayanamsa_cache
GROUP BY standard ORDER BY standard`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Stats
	for rows.Next() {
		var s Stats
		var std string
		if err := rows.Scan(&std, &s.Entries, &s.MinJD, &s.MaxJD); err != nil {
			return nil, err
		}
		s.Standard = ayanamsa.Standard(std)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Prune deletes entries older than cutoff and returns how many were removed.
func (d *DB) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := d.sql.ExecContext(ctx, `DELETE FROM ayanamsa_cache WHERE created_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
