package domain

import "database/sql"

// Floor is a building level. floor_number is admin-assigned and doubles as
// the primary key, so it is stable across exports.
type Floor struct {
	FloorNumber int
	FloorName   sql.NullString
	ImageURL    sql.NullString
}

// FloorView is the JSON shape served to clients (null instead of sql.Null*).
type FloorView struct {
	FloorNumber int     `json:"floor_number"`
	FloorName   *string `json:"floor_name"`
	ImageURL    *string `json:"image_url"`
}

func (f *Floor) View() FloorView {
	return FloorView{
		FloorNumber: f.FloorNumber,
		FloorName:   nullStr(f.FloorName),
		ImageURL:    nullStr(f.ImageURL),
	}
}

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
