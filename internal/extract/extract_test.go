package extract

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// delimitedFixture builds a file with n filler lines before the real content.
func delimitedFixture(n int, content string) []byte {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("Relatório de Notas Fiscais - linha de cabeçalho\n")
	}
	b.WriteString(content)
	return []byte(b.String())
}

func TestDelimitedRead_Semicolon(t *testing.T) {
	data := delimitedFixture(17,
		"CFOP;Valor NF;Natureza\n"+
			"1102;1.500,00;Compra\n"+
			"5102;750,50;Venda\n")

	sheets, err := (&DelimitedReader{}).Read(data, 17)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, DelimitedSheetName, sheets[0].Name)

	sheet := sheets[0].Sheet
	assert.Equal(t, []string{"CFOP", "Valor NF", "Natureza"}, sheet.Columns)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, "1102", sheet.Rows[0]["CFOP"].Raw)
	// Brazilian-formatted amounts do not parse as plain decimals.
	assert.False(t, sheet.Rows[0]["Valor NF"].Numeric)
	assert.Equal(t, "1.500,00", sheet.Rows[0]["Valor NF"].Raw)
}

func TestDelimitedRead_CommaWithPlainDecimals(t *testing.T) {
	data := delimitedFixture(17,
		"CFOP,Valor NF\n"+
			"1102,100.25\n"+
			"5102,50\n")

	sheets, err := (&DelimitedReader{}).Read(data, 17)
	require.NoError(t, err)

	sheet := sheets[0].Sheet
	require.Len(t, sheet.Rows, 2)
	assert.True(t, sheet.Rows[0]["Valor NF"].Numeric)
	assert.Equal(t, "100.25", sheet.Rows[0]["Valor NF"].Number.String())
	assert.True(t, sheet.Rows[1]["Valor NF"].Numeric)
}

func TestDelimitedRead_TooFewRows(t *testing.T) {
	sheets, err := (&DelimitedReader{}).Read(delimitedFixture(5, ""), 17)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Empty(t, sheets[0].Sheet.Columns)
	assert.Empty(t, sheets[0].Sheet.Rows)
}

func TestDelimitedRead_RaggedRows(t *testing.T) {
	data := delimitedFixture(17,
		"CFOP;Valor NF;Extra\n"+
			"1102;10,00\n")

	sheets, err := (&DelimitedReader{}).Read(data, 17)
	require.NoError(t, err)
	require.Len(t, sheets[0].Sheet.Rows, 1)
	// Short rows pad missing columns with empty cells.
	assert.True(t, sheets[0].Sheet.Rows[0]["Extra"].Empty())
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		header string
		want   rune
	}{
		{"a,b,c", ','},
		{"a;b;c", ';'},
		{"a\tb\tc", '\t'},
		{"a|b|c", '|'},
		{"single", ','},
		{"a;b,c;d", ';'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sniffDelimiter(tt.header), "header %q", tt.header)
	}
}

func workbookFixture(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Jan"))
	_, err := f.NewSheet("Fev")
	require.NoError(t, err)

	for _, sheet := range []string{"Jan", "Fev"} {
		require.NoError(t, f.SetCellValue(sheet, "A18", "CFOP"))
		require.NoError(t, f.SetCellValue(sheet, "B18", "Valor NF"))
	}
	// Jan: stored numbers, text-typed code keeps its leading zero.
	require.NoError(t, f.SetCellStr("Jan", "A19", "1102"))
	require.NoError(t, f.SetCellValue("Jan", "B19", 1500.5))
	require.NoError(t, f.SetCellStr("Jan", "A20", "5102"))
	require.NoError(t, f.SetCellValue("Jan", "B20", 200))
	// Fev: amounts stored as Brazilian-formatted text.
	require.NoError(t, f.SetCellStr("Fev", "A19", "2102"))
	require.NoError(t, f.SetCellStr("Fev", "B19", "1.000,00"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestWorkbookRead(t *testing.T) {
	data := workbookFixture(t)

	sheets, err := (&WorkbookReader{}).Read(data, 17)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "Jan", sheets[0].Name)
	assert.Equal(t, "Fev", sheets[1].Name)

	jan := sheets[0].Sheet
	assert.Equal(t, []string{"CFOP", "Valor NF"}, jan.Columns)
	require.Len(t, jan.Rows, 2)
	assert.Equal(t, "1102", jan.Rows[0]["CFOP"].Raw)
	assert.True(t, jan.Rows[0]["Valor NF"].Numeric)
	assert.Equal(t, "1500.5", jan.Rows[0]["Valor NF"].Number.String())

	fev := sheets[1].Sheet
	require.Len(t, fev.Rows, 1)
	assert.False(t, fev.Rows[0]["Valor NF"].Numeric)
	assert.Equal(t, "1.000,00", fev.Rows[0]["Valor NF"].Raw)
}

func TestWorkbookRead_Corrupt(t *testing.T) {
	_, err := (&WorkbookReader{}).Read([]byte("not a workbook"), 17)
	assert.Error(t, err)
}

func TestRegistryExtract_UnsupportedExtension(t *testing.T) {
	r := DefaultRegistry()
	_, err := r.Extract("notas.xls", nil, 17)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRegistryExtract_ExtensionCase(t *testing.T) {
	r := DefaultRegistry()
	data := delimitedFixture(17, "CFOP,Valor NF\n1102,10\n")
	sheets, err := r.Extract("NOTAS.CSV", data, 17)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	require.Len(t, sheets[0].Sheet.Rows, 1)
}

func TestReadTestdata(t *testing.T) {
	data, err := os.ReadFile("../../testdata/notas.csv")
	require.NoError(t, err)

	sheets, err := (&DelimitedReader{}).Read(data, SkipRows)
	require.NoError(t, err)
	require.Len(t, sheets, 1)

	sheet := sheets[0].Sheet
	assert.Contains(t, sheet.Columns, "CFOP")
	assert.Contains(t, sheet.Columns, "Valor NF")
	assert.Len(t, sheet.Rows, 4)
}
