// Package export renders the flight logbook to printable formats.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/cockpit/internal/app"
	"github.com/alexanderramin/cockpit/internal/domain"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Date", 30, "L"},
	{"Title", 62, "L"},
	{"Aircraft", 28, "L"},
	{"Cabin", 22, "L"},
	{"Focus", 16, "R"},
	{"Result", 18, "L"},
	{"Miles", 14, "R"},
}

// WriteLogbookPDF writes an A4 logbook: a summary header from status and
// one row per entry in the order given.
func WriteLogbookPDF(w io.Writer, status *app.CockpitStatus, entries []domain.FlightLogEntry) error {
	p := message.NewPrinter(language.English)

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Cockpit logbook", true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Cockpit Logbook")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", status.GeneratedAt.Format("Jan 2, 2006 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, p.Sprintf("Balance: %d miles   Grade: %s (x%.2f)", status.MileBalance, status.Grade.Name, status.Grade.Multiplier))
	pdf.Ln(6)
	pdf.Cell(0, 6, p.Sprintf("Last 7 days: %d min   Weekly goal: %d min", status.RollingMinutes, status.WeeklyGoalMinutes))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(254, 128, 25)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	if len(entries) == 0 {
		pdf.CellFormat(0, 7, "No flights logged.", "1", 1, "C", false, 0, "")
	}
	for i := range entries {
		e := &entries[i]
		cells := []string{
			e.CompletedAt().Format("2006-01-02 15:04"),
			tr(truncate(e.Title, 38)),
			aircraftName(e.AircraftID),
			cabinName(e.CabinID),
			fmt.Sprintf("%dm", domain.MinutesFromMs(e.FocusedMs)),
			string(e.Status),
			p.Sprintf("%d", e.MilesEarned),
		}
		for j, c := range columns {
			pdf.CellFormat(c.width, 6, cells[j], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing logbook pdf: %w", err)
	}
	return nil
}

// WriteLogbookFile writes the logbook PDF to path.
func WriteLogbookFile(path string, status *app.CockpitStatus, entries []domain.FlightLogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteLogbookPDF(f, status, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func aircraftName(id domain.AircraftID) string {
	if a, ok := domain.LookupAircraft(id); ok {
		return a.DisplayName
	}
	return string(id)
}

func cabinName(id domain.CabinID) string {
	if c, ok := domain.LookupCabin(id); ok {
		return c.DisplayName
	}
	return string(id)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
