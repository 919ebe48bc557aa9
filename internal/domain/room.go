package domain

import "database/sql"

// Room is a located space on a floor. In the canonical design room_id equals
// room_number for admin-created rooms; rooms copied by a floor clone get
// generated ids instead. x/y are percentage coordinates (0-100) on the
// floor image.
type Room struct {
	RoomID     string
	RoomName   sql.NullString
	RoomNumber sql.NullString
	Floor      sql.NullInt64
	X          sql.NullFloat64
	Y          sql.NullFloat64
}

type RoomView struct {
	RoomID     string   `json:"room_id"`
	RoomName   *string  `json:"room_name"`
	RoomNumber *string  `json:"room_number"`
	Floor      *int     `json:"floor"`
	X          *float64 `json:"x"`
	Y          *float64 `json:"y"`
}

func (r *Room) View() RoomView {
	return RoomView{
		RoomID:     r.RoomID,
		RoomName:   nullStr(r.RoomName),
		RoomNumber: nullStr(r.RoomNumber),
		Floor:      nullInt(r.Floor),
		X:          nullFloat(r.X),
		Y:          nullFloat(r.Y),
	}
}
