package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintlog/models"
)

func tempStore(t *testing.T) *WorkbookStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs.xlsx")
	store, err := NewWorkbookStore(path, "Sheet1")
	require.NoError(t, err)
	return store
}

func sampleRow(timestamp, shift string) []string {
	status := models.EquipmentStatus{Boiler: "ok", WBSEDCLUnit: "440"}
	return RowForLog(timestamp, "S. Mondal, B. Das", shift, status)
}

func TestWorkbookCreateAndReadEmpty(t *testing.T) {
	store := tempStore(t)

	logs, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestWorkbookAppendReadRoundTrip(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.Append(sampleRow("01/01/2024 08:00:00", "A")))
	require.NoError(t, store.Append(sampleRow("01/01/2024 16:00:00", "B")))

	logs, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Header occupies row 1; first data row is physical row 2.
	assert.Equal(t, 2, logs[0].RowIndex)
	assert.Equal(t, 3, logs[1].RowIndex)

	assert.Equal(t, "A", logs[0].Shift)
	assert.Equal(t, "S. Mondal, B. Das", logs[0].Electrician)
	assert.Equal(t, "2024-01-01", logs[0].Date)
	assert.Equal(t, "ok", logs[0].EquipmentStatus.Boiler)
	assert.Equal(t, "440", logs[0].EquipmentStatus.WBSEDCLUnit)
	assert.Equal(t, "", logs[0].EquipmentStatus.Pump)
}

func TestWorkbookReopenExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.xlsx")

	store, err := NewWorkbookStore(path, "Sheet1")
	require.NoError(t, err)
	require.NoError(t, store.Append(sampleRow("01/01/2024 08:00:00", "A")))

	// Reopening must not rewrite the header or lose rows.
	reopened, err := NewWorkbookStore(path, "Sheet1")
	require.NoError(t, err)
	logs, err := reopened.ReadAll()
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestWorkbookDeleteRow(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.Append(sampleRow("01/01/2024 08:00:00", "A")))
	require.NoError(t, store.Append(sampleRow("01/01/2024 16:00:00", "B")))

	logs, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, logs, 2)

	require.NoError(t, store.DeleteRow(logs[0].RowIndex))

	logs, err = store.ReadAll()
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "B", logs[0].Shift)
	// Remaining row shifted up into the deleted slot.
	assert.Equal(t, 2, logs[0].RowIndex)
}

func TestWorkbookBackup(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Append(sampleRow("01/01/2024 08:00:00", "A")))

	dst, err := store.Backup(t.TempDir())
	require.NoError(t, err)

	copied, err := NewWorkbookStore(dst, "Sheet1")
	require.NoError(t, err)
	logs, err := copied.ReadAll()
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRowCodecLayout(t *testing.T) {
	status := models.EquipmentStatus{
		Boiler:         "b",
		Solvent:        "s",
		Boiler12Ton:    "12t",
		PulverizerMega: "pm",
	}
	row := RowForLog("02/01/2024 06:00:00", "S. Mondal", "C", status)

	require.Len(t, row, 16)
	assert.Equal(t, "02/01/2024 06:00:00", row[0])
	assert.Equal(t, "S. Mondal", row[1])
	assert.Equal(t, "C", row[2])
	assert.Equal(t, "b", row[3])
	assert.Equal(t, "pm", row[13])
	assert.Equal(t, "12t", row[15])

	assert.Len(t, HeaderRow(), 16)
}
