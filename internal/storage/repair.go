package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// repairExponential converts a phone value corrupted into exponential
// notation (for example "9.19876543e+11") back to its canonical form.
// Twelve-digit values in the Indian country-code range keep their 91
// prefix; anything else keeps its last ten digits under +91.
func repairExponential(v string) (string, bool) {
	if !strings.ContainsAny(v, "eE") {
		return "", false
	}
	f, err := strconv.ParseFloat(strings.TrimPrefix(v, "+"), 64)
	if err != nil {
		return "", false
	}
	n := int64(f)
	if n <= 1_000_000_000 {
		return "", false
	}
	if n > 910_000_000_000 && n < 919_999_999_999 {
		return "+" + strconv.FormatInt(n, 10), true
	}
	digits := strconv.FormatInt(n, 10)
	return "+91" + digits[len(digits)-10:], true
}

// Repair scans a previously persisted file for phone values corrupted into
// exponential notation, rewrites them in canonical form, and reports how
// many rows were repaired. A backup of the original is written first; if
// the backup fails the original is left untouched. Running Repair twice is
// idempotent: the second pass repairs zero rows.
func (st *Store) Repair(path string) (int, error) {
	original, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	backup := path + ".backup"
	if err := os.WriteFile(backup, original, 0o644); err != nil {
		return 0, fmt.Errorf("write backup %s: %w", backup, err)
	}

	reader := csv.NewReader(strings.NewReader(string(original)))
	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	phoneCol := -1
	for i, col := range rows[0] {
		if col == "phone" {
			phoneCol = i
			break
		}
	}
	if phoneCol < 0 {
		return 0, fmt.Errorf("%s has no phone column", path)
	}

	repaired := 0
	for _, r := range rows[1:] {
		if phoneCol >= len(r) || r[phoneCol] == Sentinel {
			continue
		}
		if fixed, ok := repairExponential(r[phoneCol]); ok {
			st.logger.Info("repaired phone value",
				zap.String("from", r[phoneCol]), zap.String("to", fixed))
			r[phoneCol] = fixed
			repaired++
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("rewrite %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return 0, fmt.Errorf("rewrite %s: %w", path, err)
	}
	return repaired, nil
}
