package baseline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/kdocfmt/pkg/options"
)

// envVarPrefix is the prefix for all kdocfmt environment variables.
const envVarPrefix = "KDOCFMT_"

// applyEnv merges KDOCFMT_* environment variables into dst. Unset and
// empty variables are skipped; malformed values are errors, since an
// explicitly exported variable that cannot apply is caller intent gone
// wrong, not cascade content.
func applyEnv(dst *options.Resolved) error {
	intVars := []struct {
		suffix string
		field  *int
	}{
		{"MAX_LINE_WIDTH", &dst.MaxLineWidth},
		{"MAX_COMMENT_WIDTH", &dst.MaxCommentWidth},
		{"HANGING_INDENT", &dst.HangingIndent},
		{"TAB_WIDTH", &dst.TabWidth},
	}

	for _, v := range intVars {
		raw := os.Getenv(envVarPrefix + v.suffix)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer for %s%s: %q", envVarPrefix, v.suffix, raw)
		}
		*v.field = n
	}

	if raw := os.Getenv(envVarPrefix + "COLLAPSE_SINGLE_LINE"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sCOLLAPSE_SINGLE_LINE: %q", envVarPrefix, raw)
		}
		dst.CollapseSingleLine = b
	}

	return nil
}
