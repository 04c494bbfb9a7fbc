// Package storage persists assembled contact records to delimited tabular
// files. Column order is part of the contract for downstream tooling, and
// phone values must never serialize in exponential notation.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"contactscraper/internal/domain"
)

// Sentinel is the placeholder written for fields that were not found.
// It exists only at this boundary; internal code uses empty strings.
const Sentinel = "Not found"

var baseColumns = []string{
	"name", "email", "phone", "linkedin", "instagram", "twitter",
	"profession", "city", "state", "domain", "source_url",
}

var medicalColumns = []string{
	"designation", "qualification", "specialization",
	"clinic_hospital", "address", "experience",
}

// Columns returns the output schema for the given profession.
func Columns(profession string) []string {
	cols := append([]string(nil), baseColumns...)
	if domain.IsMedicalProfession(profession) {
		cols = append(cols, medicalColumns...)
	}
	return cols
}

// Store writes contact records to CSV files.
type Store struct {
	logger *zap.Logger
}

func NewStore(logger *zap.Logger) *Store {
	return &Store{logger: logger}
}

// Write persists records to path with the schema for profession. The header
// row is always written, even for zero records, so downstream consumers
// never hit a missing file. On a write failure it falls back once to an
// alternate path; a fallback failure is fatal for the persist.
func (st *Store) Write(path string, records []domain.Record, profession string) error {
	cols := Columns(profession)

	if err := st.writeFile(path, cols, records); err != nil {
		fallback := path + ".fallback.csv"
		st.logger.Error("persist failed, trying fallback",
			zap.String("path", path), zap.String("fallback", fallback), zap.Error(err))

		if ferr := st.writeFile(fallback, cols, records); ferr != nil {
			return fmt.Errorf("persist to %s failed (%v); fallback also failed: %w", path, err, ferr)
		}
		st.logger.Warn("fallback persist succeeded", zap.String("path", fallback))
		return nil
	}

	st.logger.Info("persisted contacts",
		zap.String("path", path), zap.Int("records", len(records)))
	return nil
}

func (st *Store) writeFile(path string, cols []string, records []domain.Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if err := w.Write(row(&records[i], cols)); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// row serializes one record in column order, converting absent fields to
// the sentinel and guarding the phone against exponential notation.
func row(r *domain.Record, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		out = append(out, fieldValue(r, col))
	}
	return out
}

func fieldValue(r *domain.Record, col string) string {
	var v string
	switch col {
	case "name":
		v = r.Name
	case "email":
		v = r.Email
	case "phone":
		v = formatPhone(r.Phone)
	case "linkedin":
		v = r.LinkedIn
	case "instagram":
		v = r.Instagram
	case "twitter":
		v = r.Twitter
	case "profession":
		v = r.Profession
	case "city":
		v = r.City
	case "state":
		v = r.State
	case "domain":
		v = r.Domain
	case "source_url":
		v = r.SourceURL
	default:
		if r.Medical != nil {
			switch col {
			case "designation":
				v = r.Medical.Designation
			case "qualification":
				v = r.Medical.Qualification
			case "specialization":
				v = r.Medical.Specialization
			case "clinic_hospital":
				v = r.Medical.ClinicHospital
			case "address":
				v = r.Medical.Address
			case "experience":
				v = r.Medical.Experience
			}
		}
	}
	if v == "" {
		return Sentinel
	}
	return v
}

// formatPhone is the last line of defense against numeric corruption: a
// phone that somehow arrives in exponential notation is converted back to
// its canonical '+'-prefixed digit form before it reaches disk.
func formatPhone(v string) string {
	if v == "" {
		return Sentinel
	}
	if fixed, ok := repairExponential(v); ok {
		return fixed
	}
	return v
}
