// Package export serializes directory tables into downloadable documents.
package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tables the export endpoint accepts.
const (
	TableEmployees   = "employees"
	TableRoles       = "roles"
	TableDepartments = "departments"
)

func ValidTable(table string) bool {
	switch table {
	case TableEmployees, TableRoles, TableDepartments:
		return true
	}
	return false
}

// Filename builds the timestamped download name, e.g.
// employees-2026-01-02_15-04-05Z.json
func Filename(table, extension string, now time.Time) string {
	ts := now.UTC().Format("2006-01-02_15-04-05Z")
	return fmt.Sprintf("%s-%s.%s", table, ts, extension)
}

// JSON renders records as an indented JSON document.
func JSON(records any) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// NameRecord is the export shape of a taxonomy entry.
type NameRecord struct {
	Name string `json:"name"`
}

func NameRecords(names []string) []NameRecord {
	out := make([]NameRecord, 0, len(names))
	for _, n := range names {
		out = append(out, NameRecord{Name: n})
	}
	return out
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
