package domain

import "database/sql"

// Employee is a directory entry. id is the externally assigned employee
// number. is_active controls visibility in the public directory, not
// deletion. admin_email/admin_password are only ever set while is_admin is
// true; every write path enforces that.
//
// is_active and is_admin are stored as INTEGER 0/1 so that exported batches
// re-import byte-identically.
type Employee struct {
	ID             string
	Name           sql.NullString
	NameEn         sql.NullString
	Role           sql.NullString
	Department     sql.NullString
	Administration sql.NullString
	RoomID         sql.NullString
	Floor          sql.NullInt64
	Email          sql.NullString
	PhoneOffice    sql.NullString
	PhoneMobile    sql.NullString
	IsActive       int
	IsAdmin        int
	AdminEmail     sql.NullString
	AdminPassword  sql.NullString
}

// EmployeeView is the public projection: no credential digest.
type EmployeeView struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	NameEn         *string `json:"name_en"`
	Role           *string `json:"role"`
	Department     *string `json:"department"`
	Administration *string `json:"administration"`
	RoomID         *string `json:"room_id"`
	Floor          *int    `json:"floor"`
	Email          *string `json:"email"`
	PhoneOffice    *string `json:"phone_office"`
	PhoneMobile    *string `json:"phone_mobile"`
	IsActive       int     `json:"is_active"`
	IsAdmin        int     `json:"is_admin"`
	AdminEmail     *string `json:"admin_email"`
}

// EmployeeExport is the full-field export record, credential digest included.
// Serving the digest is an inherited contract of the export format; the
// export service warns about it instead of dropping it silently.
type EmployeeExport struct {
	EmployeeView
	AdminPassword *string `json:"admin_password"`
}

func (e *Employee) View() EmployeeView {
	return EmployeeView{
		ID:             e.ID,
		Name:           nullStr(e.Name),
		NameEn:         nullStr(e.NameEn),
		Role:           nullStr(e.Role),
		Department:     nullStr(e.Department),
		Administration: nullStr(e.Administration),
		RoomID:         nullStr(e.RoomID),
		Floor:          nullInt(e.Floor),
		Email:          nullStr(e.Email),
		PhoneOffice:    nullStr(e.PhoneOffice),
		PhoneMobile:    nullStr(e.PhoneMobile),
		IsActive:       e.IsActive,
		IsAdmin:        e.IsAdmin,
		AdminEmail:     nullStr(e.AdminEmail),
	}
}

func (e *Employee) Export() EmployeeExport {
	return EmployeeExport{
		EmployeeView:  e.View(),
		AdminPassword: nullStr(e.AdminPassword),
	}
}
