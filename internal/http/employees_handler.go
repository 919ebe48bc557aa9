package httpapi

import (
	"fmt"
	"net/http"

	"officedir-data/internal/batch"
	"officedir-data/internal/repository"
	"officedir-data/internal/service"

	"go.uber.org/zap"
)

type EmployeesHandler struct {
	employees service.EmployeeService
	directory service.DirectoryService
	logger    *zap.Logger
}

func NewEmployeesHandler(employees service.EmployeeService, directory service.DirectoryService, logger *zap.Logger) *EmployeesHandler {
	return &EmployeesHandler{employees: employees, directory: directory, logger: logger}
}

// employeeInput coerces a loose JSON body the same way the batch importer
// does, so single-record writes and bulk imports agree on field semantics.
func employeeInput(body map[string]any) service.EmployeeInput {
	return service.EmployeeInput{
		ID:             batch.String(body["id"]),
		Name:           batch.String(body["name"]),
		NameEn:         batch.String(body["name_en"]),
		Role:           batch.String(body["role"]),
		Department:     batch.String(body["department"]),
		Administration: batch.String(body["administration"]),
		RoomID:         batch.String(body["room_id"]),
		Floor:          batch.FloorNumber(body["floor"]),
		Email:          batch.String(body["email"]),
		PhoneOffice:    batch.String(body["phone_office"]),
		PhoneMobile:    batch.String(body["phone_mobile"]),
		IsActive:       batch.Bool(body["is_active"]),
		IsAdmin:        batch.Bool(body["is_admin"]),
		AdminEmail:     batch.String(body["admin_email"]),
		AdminPassword:  batch.String(body["admin_password"]),
	}
}

func (h *EmployeesHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		views, err := h.directory.ListActiveEmployees(r.Context())
		if err != nil {
			h.logger.Error("list employees failed", zap.Error(err))
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	case http.MethodPost:
		var body map[string]any
		if err := readBodyJSON(r, &body); err != nil {
			writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
			return
		}
		id, err := h.employees.CreateEmployee(r.Context(), employeeInput(body))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"ok": true, "id": id})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *EmployeesHandler) Item(w http.ResponseWriter, r *http.Request) {
	id := pathTail(r, "/api/employees/")
	if id == "" {
		writeError(w, fmt.Errorf("employee id is required: %w", repository.ErrInvalidArgument))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body map[string]any
		if err := readBodyJSON(r, &body); err != nil {
			writeError(w, fmt.Errorf("invalid json body: %w", repository.ErrInvalidArgument))
			return
		}
		if err := h.employees.UpdateEmployee(r.Context(), id, employeeInput(body)); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	case http.MethodDelete:
		if err := h.employees.DeleteEmployee(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}
