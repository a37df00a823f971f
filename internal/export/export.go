package export

import (
	"fmt"
	"strings"

	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/reservation"
	"github.com/xuri/excelize/v2"
)

const (
	ScheduleSheet      = "Schedule"
	SinglesLadderSheet = "Ladder enkel"
	DoublesLadderSheet = "Ladder dubbel"
)

// Workbook builds a workbook with the season schedule and both ladders.
func Workbook(season *club.Season, roster *club.Roster, reservations []reservation.Reservation) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")

	if err := writeSchedule(f, season, reservations); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}
	if err := writeLadder(f, SinglesLadderSheet, club.SinglesLadder(roster, reservations)); err != nil {
		return nil, fmt.Errorf("writing singles ladder: %w", err)
	}
	if err := writeLadder(f, DoublesLadderSheet, club.DoublesLadder(roster, reservations)); err != nil {
		return nil, fmt.Errorf("writing doubles ladder: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeSchedule(f *excelize.File, season *club.Season, reservations []reservation.Reservation) error {
	sheet := ScheduleSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Date", "Time slot"}
	for c := 1; c <= season.Courts(); c++ {
		headers = append(headers, fmt.Sprintf("Terrein %d", c))
	}
	if err := writeHeader(f, sheet, headers); err != nil {
		return err
	}

	type courtKey struct {
		slot  reservation.Slot
		court int
	}
	byCourt := make(map[courtKey]reservation.Reservation, len(reservations))
	for _, r := range reservations {
		byCourt[courtKey{r.Slot(), r.Court}] = r
	}

	row := 2
	for _, slot := range season.Slots() {
		f.SetCellValue(sheet, cellRef(1, row), slot.Date)
		f.SetCellValue(sheet, cellRef(2, row), slot.TimeSlot)
		for c := 1; c <= season.Courts(); c++ {
			if r, ok := byCourt[courtKey{slot, c}]; ok {
				f.SetCellValue(sheet, cellRef(c+2, row), Lineup(r))
			}
		}
		row++
	}

	f.SetColWidth(sheet, "A", "B", 14)
	if season.Courts() > 0 {
		last, _ := excelize.ColumnNumberToName(season.Courts() + 2)
		f.SetColWidth(sheet, "C", last, 36)
	}
	return nil
}

func writeLadder(f *excelize.File, sheet string, standings []club.Standing) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeader(f, sheet, []string{"#", "Player", "Wins", "Matches", "Win %"}); err != nil {
		return err
	}
	for i, st := range standings {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), i+1)
		f.SetCellValue(sheet, cellRef(2, row), st.Player)
		f.SetCellValue(sheet, cellRef(3, row), st.Wins)
		f.SetCellValue(sheet, cellRef(4, row), st.Matches)
		f.SetCellValue(sheet, cellRef(5, row), st.WinPercentage)
	}
	f.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		if err := f.SetCellValue(sheet, cellRef(i+1, 1), h); err != nil {
			return err
		}
	}
	style, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#2E7D32"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if style != 0 {
		f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), style)
	}
	return nil
}

// Lineup renders a reservation as a single cell, e.g. "Ann & Bob vs Cas & Dirk".
// Open seats show as "open"; competitive matches are marked.
func Lineup(r reservation.Reservation) string {
	names := make([]string, len(r.Players))
	for i, p := range r.Players {
		if p == "" {
			p = "open"
		}
		names[i] = p
	}

	var text string
	if r.MatchType == reservation.Double && len(names) == 4 {
		text = names[0] + " & " + names[1] + " vs " + names[2] + " & " + names[3]
	} else {
		text = strings.Join(names, " vs ")
	}
	if r.Category == reservation.Competitive {
		text += " (wedstrijd)"
	}
	return text
}

func cellRef(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
