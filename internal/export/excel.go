package export

import (
	"bytes"
	"fmt"
	"strconv"

	"officedir-data/internal/domain"

	"github.com/xuri/excelize/v2"
)

// EmployeeExportHeader lists every employee column the export carries,
// credential digest included (inherited export contract).
var EmployeeExportHeader = []string{
	"ID",
	"Name",
	"Name (EN)",
	"Role",
	"Department",
	"Administration",
	"Room",
	"Floor",
	"Email",
	"Phone (Office)",
	"Phone (Mobile)",
	"Active",
	"Admin",
	"Admin Email",
	"Admin Password",
}

// EmployeesExcel renders the full employee table as an XLSX workbook.
func EmployeesExcel(employees []domain.EmployeeExport) ([]byte, error) {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		floor := ""
		if e.Floor != nil {
			floor = strconv.Itoa(*e.Floor)
		}
		rows = append(rows, []string{
			e.ID,
			strOrEmpty(e.Name),
			strOrEmpty(e.NameEn),
			strOrEmpty(e.Role),
			strOrEmpty(e.Department),
			strOrEmpty(e.Administration),
			strOrEmpty(e.RoomID),
			floor,
			strOrEmpty(e.Email),
			strOrEmpty(e.PhoneOffice),
			strOrEmpty(e.PhoneMobile),
			strconv.Itoa(e.IsActive),
			strconv.Itoa(e.IsAdmin),
			strOrEmpty(e.AdminEmail),
			strOrEmpty(e.AdminPassword),
		})
	}
	return generateExcel("Employees", EmployeeExportHeader, rows)
}

// NamesExcel renders a roles or departments table as an XLSX workbook.
func NamesExcel(sheetName string, names []string) ([]byte, error) {
	rows := make([][]string, 0, len(names))
	for _, n := range names {
		rows = append(rows, []string{n})
	}
	return generateExcel(sheetName, []string{"Name"}, rows)
}

func generateExcel(sheetName string, headers []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so no deferred Close before it

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			f.Close()
			return nil, err
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
