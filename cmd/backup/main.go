package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"skyline/internal/infra"
	"skyline/pkg/zip"
)

// contentTables are dumped in order; restore replays the same order so
// foreign keys resolve (categories before their children).
var contentTables = []string{
	"project_categories",
	"projects",
	"service_categories",
	"services",
	"blog_categories",
	"blog_posts",
	"departments",
	"job_positions",
	"job_applications",
	"team_members",
	"testimonials",
	"contact_inquiries",
	"site_settings",
	"system_metrics",
}

func main() {
	var (
		out     string
		restore string
	)
	flag.StringVar(&out, "out", "", "archive path to write (default skyline-backup-<date>.zip)")
	flag.StringVar(&restore, "restore", "", "archive path to restore from")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("failed to reach database")
	}

	if restore != "" {
		if err := restoreArchive(db, restore); err != nil {
			logger.Fatal().Err(err).Str("archive", restore).Msg("restore failed")
		}
		logger.Info().Str("archive", restore).Msg("restore complete")
		return
	}

	if out == "" {
		out = fmt.Sprintf("skyline-backup-%s.zip", time.Now().Format("2006-01-02"))
	}
	if err := dumpArchive(db, out); err != nil {
		logger.Fatal().Err(err).Str("archive", out).Msg("backup failed")
	}
	logger.Info().Str("archive", out).Msg("backup complete")
}

func dumpArchive(db *sql.DB, path string) error {
	entries := make([]zip.Entry, 0, len(contentTables))
	for _, table := range contentTables {
		rows, err := dumpTable(db, table)
		if err != nil {
			return fmt.Errorf("dump %s: %w", table, err)
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", table, err)
		}
		entries = append(entries, zip.Entry{Name: table + ".json", Data: data})
	}
	archive, err := zip.Archive(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(path, archive, 0o644)
}

// dumpTable reads every row as a column-name keyed map. []byte values are
// stringified so the JSON stays readable.
func dumpTable(db *sql.DB, table string) ([]map[string]any, error) {
	rows, err := db.Query("select * from " + table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var out []map[string]any
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		record := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := vals[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = vals[i]
			}
		}
		out = append(out, record)
	}
	return out, rows.Err()
}

func restoreArchive(db *sql.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	entries, err := zip.Extract(data)
	if err != nil {
		return err
	}
	byName := make(map[string][]byte, len(entries))
	for _, e := range entries {
		byName[e.Name] = e.Data
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range contentTables {
		raw, ok := byName[table+".json"]
		if !ok {
			continue
		}
		var records []map[string]any
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("decode %s: %w", table, err)
		}
		for _, record := range records {
			if err := insertRecord(tx, table, record); err != nil {
				return fmt.Errorf("restore %s: %w", table, err)
			}
		}
	}
	return tx.Commit()
}

func insertRecord(tx *sql.Tx, table string, record map[string]any) error {
	cols := make([]string, 0, len(record))
	for col := range record {
		cols = append(cols, col)
	}
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = record[col]
	}
	query := fmt.Sprintf(
		"insert into %s (%s) values (%s) on conflict do nothing",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)
	_, err := tx.Exec(query, args...)
	return err
}
