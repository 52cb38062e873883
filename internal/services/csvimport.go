package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kylerishisaki/APEXDashboard/internal/models"
)

// nativeColumns is the exact header contract of the native points CSV.
var nativeColumns = []string{"week", "label", "move", "recover", "fuel", "connect", "breathe", "misc"}

// vendorHeaderMarkers identify a Bridge Athletic daily-log export by
// fields that never appear in the native header.
var vendorHeaderMarkers = []string{"Athlete", "Workout Date"}

// ErrNoDataRows is returned when a vendor export contains a header but
// no log rows.
var ErrNoDataRows = errors.New("no data rows found")

// ImportPointsCSV sniffs the input for a vendor header marker and
// dispatches to the matching parser.
func ImportPointsCSV(text string) ([]models.WeeklyPointRecord, error) {
	header := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		header = text[:idx]
	}
	for _, marker := range vendorHeaderMarkers {
		if strings.Contains(header, marker) {
			return ParseVendorCSV(text)
		}
	}
	return ParseNativeCSV(text)
}

// ParseNativeCSV parses the strict native interchange format: a header
// row naming all eight required columns, then one row per ISO week.
// Header shape is enforced hard; numeric cells are lenient and default
// to 0.
func ParseNativeCSV(text string) ([]models.WeeklyPointRecord, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("missing header row")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range nativeColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]models.WeeklyPointRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		week := cell(row, "week")
		if week == "" {
			return nil, fmt.Errorf("row %d: missing week identifier", n+1)
		}
		records = append(records, models.WeeklyPointRecord{
			Week:    week,
			Label:   cell(row, "label"),
			Move:    parseIntOr(cell(row, "move"), 0),
			Recover: parseIntOr(cell(row, "recover"), 0),
			Fuel:    parseIntOr(cell(row, "fuel"), 0),
			Connect: parseIntOr(cell(row, "connect"), 0),
			Breathe: parseIntOr(cell(row, "breathe"), 0),
			Misc:    parseIntOr(cell(row, "misc"), 0),
		})
	}
	return records, nil
}

// WriteNativeCSV serializes weekly point records to the native
// interchange format, the exact inverse of ParseNativeCSV.
func WriteNativeCSV(records []models.WeeklyPointRecord) string {
	var builder strings.Builder
	writer := csv.NewWriter(&builder)
	writer.Write(nativeColumns)
	for _, r := range records {
		writer.Write([]string{
			r.Week, r.Label,
			strconv.Itoa(r.Move), strconv.Itoa(r.Recover), strconv.Itoa(r.Fuel),
			strconv.Itoa(r.Connect), strconv.Itoa(r.Breathe), strconv.Itoa(r.Misc),
		})
	}
	writer.Flush()
	return builder.String()
}

// Vendor export column positions. The format is not self-describing:
// these indices are tied to the vendor's column ordering and a layout
// change misparses silently. The connect block spans five columns and
// the vendor has no independent breathwork column, so breathe mirrors
// the first connect column.
const vendorDateColumn = 3

type vendorBucket struct {
	record                                     models.WeeklyPointRecord
	move, recover, fuel, connect, breathe, misc float64
}

// ParseVendorCSV parses a Bridge Athletic daily-log export. The first
// line is skipped, each remaining row is read positionally, quoted
// fields may contain commas, and rows accumulate into ISO week buckets.
// Pillar totals round to the nearest integer after summation, not per
// row.
func ParseVendorCSV(text string) ([]models.WeeklyPointRecord, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrNoDataRows
	}

	buckets := make(map[string]*vendorBucket)
	for _, row := range rows[1:] {
		date, ok := parseVendorDate(cellAt(row, vendorDateColumn))
		if !ok {
			continue
		}

		num := func(i int) float64 { return parseFloatOr(cellAt(row, i), 0) }

		key := WeekKey(date)
		bucket, exists := buckets[key]
		if !exists {
			bucket = &vendorBucket{record: models.WeeklyPointRecord{
				Week:  key,
				Label: weekRangeLabel(date),
			}}
			buckets[key] = bucket
		}
		bucket.move += num(8) + num(9) + num(10) + num(11)
		bucket.recover += num(13) + num(14) + num(15) + num(16)
		bucket.fuel += num(18) + num(19) + num(20) + num(21)
		bucket.connect += num(23) + num(24) + num(25) + num(26) + num(27)
		bucket.breathe += num(23)
		bucket.misc += num(29) + num(30)
	}

	records := make([]models.WeeklyPointRecord, 0, len(buckets))
	for _, bucket := range buckets {
		record := bucket.record
		record.Move = int(math.Round(bucket.move))
		record.Recover = int(math.Round(bucket.recover))
		record.Fuel = int(math.Round(bucket.fuel))
		record.Connect = int(math.Round(bucket.connect))
		record.Breathe = int(math.Round(bucket.breathe))
		record.Misc = int(math.Round(bucket.misc))
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Week < records[j].Week })
	return records, nil
}

// parseVendorDate reads the vendor's m/d/yy date cell.
func parseVendorDate(cell string) (time.Time, bool) {
	parts := strings.Split(cell, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	day, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, err3 := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(2000+year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func cellAt(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(row[i]), `"`)
}

// parseIntOr parses a numeric cell, falling back instead of failing so
// a single bad cell never aborts a multi-row import.
func parseIntOr(value string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func parseFloatOr(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fallback
	}
	return f
}
