package batch

// EmployeeRecord is the typed intermediate form of one employee batch entry.
// nil means the batch did not mention the field.
type EmployeeRecord struct {
	ID             string
	Name           string
	NameEn         *string
	Role           *string
	Department     *string
	Administration *string
	RoomNumber     *string
	RoomName       *string
	Floor          *int
	Email          *string
	PhoneOffice    *string
	PhoneMobile    *string
	IsActive       *bool
	IsAdmin        *bool
	AdminEmail     *string
	// AdminPassword is the raw supplied secret; resolution decides whether
	// it is hashed or already a digest.
	AdminPassword *string
}

// EmployeeRecordFrom normalizes one raw batch entry. ok is false when the
// entry lacks a usable identity or name; such entries are skipped without
// aborting the batch.
func EmployeeRecordFrom(raw map[string]any) (EmployeeRecord, bool) {
	id := String(field(raw, "id", "employee_id"))
	name := String(field(raw, "name"))
	if id == nil || name == nil {
		return EmployeeRecord{}, false
	}

	rec := EmployeeRecord{
		ID:             *id,
		Name:           *name,
		NameEn:         String(field(raw, "name_en")),
		Role:           String(field(raw, "role")),
		Department:     String(field(raw, "department")),
		Administration: String(field(raw, "administration")),
		RoomNumber:     String(field(raw, "room_id", "room_number")),
		RoomName:       String(field(raw, "room_name")),
		Floor:          FloorNumber(field(raw, "floor")),
		Email:          String(field(raw, "email")),
		PhoneOffice:    String(field(raw, "phone_office")),
		PhoneMobile:    String(field(raw, "phone_mobile")),
		IsActive:       Bool(field(raw, "is_active")),
		IsAdmin:        Bool(field(raw, "is_admin")),
		AdminEmail:     String(field(raw, "admin_email")),
		AdminPassword:  String(field(raw, "admin_password")),
	}
	return rec, true
}
