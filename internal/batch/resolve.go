package batch

import "officedir-data/internal/credentials"

// PrevEmployee is the slice of an existing employee row the resolution
// needs: flags plus current admin fields.
type PrevEmployee struct {
	IsActive      int
	IsAdmin       int
	AdminEmail    *string
	AdminPassword *string
}

// AdminState is the resolved active/admin outcome for one record. Unlike the
// merge of ordinary fields these four are always written on upsert.
type AdminState struct {
	IsActive      int
	IsAdmin       int
	AdminEmail    *string
	AdminPassword *string
}

// ResolveAdminState applies the active/admin rules for one batch record
// against the existing row (prev == nil for a new employee):
//
//   - explicit batch flags win, else the prior value, else active=1/admin=0
//   - a demotion always clears admin_email and admin_password, no matter
//     what the batch carried
//   - while admin: a supplied email replaces the stored one; a supplied
//     secret is stored in digest form (hashed unless already 64-hex); with
//     no secret supplied the prior digest survives
func ResolveAdminState(rec EmployeeRecord, prev *PrevEmployee) AdminState {
	st := AdminState{IsActive: 1, IsAdmin: 0}

	if rec.IsActive != nil {
		st.IsActive = boolToInt(*rec.IsActive)
	} else if prev != nil {
		st.IsActive = prev.IsActive
	}

	if rec.IsAdmin != nil {
		st.IsAdmin = boolToInt(*rec.IsAdmin)
	} else if prev != nil {
		st.IsAdmin = prev.IsAdmin
	}

	if st.IsAdmin == 0 {
		return st
	}

	if rec.AdminEmail != nil {
		st.AdminEmail = rec.AdminEmail
	} else if prev != nil {
		st.AdminEmail = prev.AdminEmail
	}

	if rec.AdminPassword != nil {
		digest := credentials.Normalize(*rec.AdminPassword)
		st.AdminPassword = &digest
	} else if prev != nil {
		st.AdminPassword = prev.AdminPassword
	}

	return st
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
