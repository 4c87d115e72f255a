package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/statetax/taxingest-go/pkg/taxingest/models"
)

// StateCode resolves a display name to a two-letter state code.
// Names are matched case-insensitively with periods removed and any
// parenthetical footnote marker dropped. Unknown or empty names resolve
// to "".
func StateCode(name string) string {
	if name == "" {
		return ""
	}
	safe := strings.ToLower(name)
	safe = strings.ReplaceAll(safe, ".", "")
	if i := strings.Index(safe, "("); i >= 0 {
		safe = safe[:i]
	}
	return stateCodes[strings.TrimSpace(safe)]
}

// CleanDeduction normalizes a deduction or exemption cell.
// Numbers pass through, empty and "N/A" cells become nil, "credit" cells
// have the amount parsed out, and any other text is preserved as-is.
// A credit cell whose amount does not parse as an integer is an error;
// the run aborts rather than guessing.
func CleanDeduction(v any) (models.DeductionEntry, error) {
	switch raw := v.(type) {
	case nil:
		return models.DeductionEntry{}, nil
	case int64, float64:
		return models.DeductionEntry{Value: raw}, nil
	case string:
		lower := strings.ToLower(raw)
		na := strings.NewReplacer(".", "", "/", "").Replace(strings.TrimSpace(lower))
		if raw == "" || na == "na" {
			return models.DeductionEntry{}, nil
		}
		if strings.Contains(lower, "credit") {
			amount := strings.NewReplacer("credit", "", "Credit", "", "CREDIT", "", "$", "", ",", "").Replace(raw)
			n, err := strconv.Atoi(strings.TrimSpace(amount))
			if err != nil {
				return models.DeductionEntry{}, fmt.Errorf("parse credit amount %q: %w", raw, err)
			}
			return models.DeductionEntry{Value: int64(n), Credit: true}, nil
		}
		return models.DeductionEntry{Value: raw}, nil
	default:
		return models.DeductionEntry{}, fmt.Errorf("unexpected deduction cell type %T", v)
	}
}

// ExtractCodes pulls the footnote reference codes out of a name cell.
// "Colorado (a, b)" yields ["a", "b"]; text without parentheses yields nil.
func ExtractCodes(v any) []string {
	text, ok := v.(string)
	if !ok || !strings.Contains(text, "(") {
		return nil
	}
	inner := strings.SplitN(text, "(", 2)[1]
	inner = strings.ReplaceAll(inner, ")", "")
	var codes []string
	for _, code := range strings.Split(inner, ",") {
		codes = append(codes, strings.TrimSpace(code))
	}
	return codes
}
