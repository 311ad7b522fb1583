package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/juryboard/juryboard/internal/models"
	"github.com/juryboard/juryboard/internal/scoring"
)

const (
	headerFill = "366092"
	goldFill   = "FFD700"
	silverFill = "C0C0C0"
	bronzeFill = "CD7F32"

	// xlsx MIME type for download responses
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func thinBorders() []excelize.Border {
	sides := []string{"top", "left", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "000000", Style: 1}
	}
	return borders
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Border: thinBorders(),
	})
}

func fillStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		Border: thinBorders(),
	})
}

func borderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{Border: thinBorders()})
}

// writeSheet lays out one table: styled header row, bordered data rows,
// fixed column width. rowFills maps a data row index (0-based) to a fill
// color overriding the plain bordered style.
func writeSheet(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, rowFills map[int]string) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return fmt.Errorf("failed to resolve last column: %w", err)
	}

	header, err := headerStyle(f)
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", header); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	plain, err := borderStyle(f)
	if err != nil {
		return fmt.Errorf("failed to build border style: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve row cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}

		style := plain
		if color, ok := rowFills[i]; ok {
			style, err = fillStyle(f, color)
			if err != nil {
				return fmt.Errorf("failed to build fill style: %w", err)
			}
		}
		if err := f.SetCellStyle(sheet, cell, fmt.Sprintf("%s%d", lastCol, i+2), style); err != nil {
			return fmt.Errorf("failed to style row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", lastCol, 15); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	return nil
}

// JuryWorkbook renders one jury's mark table: S.No, team name, one column
// per registered criterion in registry order, total. Teams the jury never
// scored render as zeros.
func JuryWorkbook(juryName string, teams []models.Team, marks []models.Mark, criteria []string) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("%s_Marks", juryName)
	f.SetSheetName("Sheet1", sheet)

	byTeam := make(map[string]models.Mark, len(marks))
	for _, mark := range marks {
		byTeam[mark.TeamName] = mark
	}

	headers := []interface{}{"S.No", "Team Name"}
	for _, criterion := range criteria {
		headers = append(headers, criterion)
	}
	headers = append(headers, "Total")

	rows := make([][]interface{}, 0, len(teams))
	for i, team := range teams {
		row := []interface{}{i + 1, team.Name}
		mark := byTeam[team.Name]
		for _, criterion := range criteria {
			row = append(row, mark.Criteria[criterion])
		}
		row = append(row, mark.Total)
		rows = append(rows, row)
	}

	if err := writeSheet(f, sheet, headers, rows, nil); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, fmt.Sprintf("%s_Marks.xlsx", juryName), nil
}

// LeaderboardWorkbook renders the final standings with one total column per
// jury and the top three ranks filled gold, silver and bronze.
func LeaderboardWorkbook(leaderboard scoring.Leaderboard) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Final_Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Rank", "Team Name"}
	for _, jury := range leaderboard.Juries {
		headers = append(headers, fmt.Sprintf("%s Total", jury))
	}
	headers = append(headers, "Grand Total")

	medals := map[int]string{0: goldFill, 1: silverFill, 2: bronzeFill}
	rowFills := make(map[int]string)

	rows := make([][]interface{}, 0, len(leaderboard.Ranked))
	for i, standing := range leaderboard.Ranked {
		row := []interface{}{standing.Rank, standing.TeamName}
		for _, jury := range leaderboard.Juries {
			row = append(row, standing.JuryTotals[jury])
		}
		row = append(row, standing.GrandTotal)
		rows = append(rows, row)

		if color, ok := medals[i]; ok {
			rowFills[i] = color
		}
	}

	if err := writeSheet(f, sheet, headers, rows, rowFills); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, "Final_Leaderboard.xlsx", nil
}
