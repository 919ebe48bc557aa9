package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXMLDocument_ListsAndSingles(t *testing.T) {
	doc, err := ParseXMLDocument([]byte(`
		<Import>
			<Employees>
				<Employee id="9">
					<Name>Dana</Name>
					<RoomNumber>305</RoomNumber>
					<floor>3</floor>
				</Employee>
				<Employee id="10"><Name>Avi</Name></Employee>
			</Employees>
			<Roles>
				<Role>Manager</Role>
				<Role>Engineer</Role>
			</Roles>
			<Departments>
				<Department><Name>HR</Name></Department>
			</Departments>
		</Import>`))
	require.NoError(t, err)

	require.Len(t, doc.Employees, 2)
	rec, ok := EmployeeRecordFrom(doc.Employees[0])
	require.True(t, ok)
	assert.Equal(t, "9", rec.ID)
	assert.Equal(t, "Dana", rec.Name)
	require.NotNil(t, rec.RoomNumber)
	assert.Equal(t, "305", *rec.RoomNumber)
	require.NotNil(t, rec.Floor)
	assert.Equal(t, 3, *rec.Floor)

	require.Len(t, doc.Roles, 2)
	assert.Equal(t, "Manager", *Name(doc.Roles[0]))

	require.Len(t, doc.Departments, 1)
	assert.Equal(t, "HR", *Name(doc.Departments[0]))
}

func TestParseXMLDocument_SingleObjectSection(t *testing.T) {
	// a container holding one bare record normalizes to a one-element list
	doc, err := ParseXMLDocument([]byte(`
		<employees>
			<id>9</id>
			<name>Dana</name>
		</employees>`))
	require.NoError(t, err)
	require.Len(t, doc.Employees, 1)
	rec, ok := EmployeeRecordFrom(doc.Employees[0])
	require.True(t, ok)
	assert.Equal(t, "9", rec.ID)
	assert.Equal(t, "Dana", rec.Name)
}

func TestParseXMLDocument_AttributeOnlySingleObjectSection(t *testing.T) {
	// a self-closing container carrying its fields as attributes is one record
	doc, err := ParseXMLDocument([]byte(`<Import><Employees id="9" name="Dana"/></Import>`))
	require.NoError(t, err)
	require.Len(t, doc.Employees, 1)
	rec, ok := EmployeeRecordFrom(doc.Employees[0])
	require.True(t, ok)
	assert.Equal(t, "9", rec.ID)
	assert.Equal(t, "Dana", rec.Name)
}

func TestParseXMLDocument_CaseInsensitiveSections(t *testing.T) {
	doc, err := ParseXMLDocument([]byte(`
		<import>
			<ROLES><role>Admin</role></ROLES>
		</import>`))
	require.NoError(t, err)
	require.Len(t, doc.Roles, 1)
	assert.Equal(t, "Admin", *Name(doc.Roles[0]))
}

func TestParseXMLDocument_Malformed(t *testing.T) {
	_, err := ParseXMLDocument([]byte(`<Import><Employees>`))
	assert.Error(t, err)

	_, err = ParseXMLDocument([]byte(``))
	assert.Error(t, err)

	// well-formed but with no recognized section
	_, err = ParseXMLDocument([]byte(`<Import><Other/></Import>`))
	assert.Error(t, err)
}
