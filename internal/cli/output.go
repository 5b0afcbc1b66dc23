package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solarlune/rot3/internal/config"
	"gopkg.in/yaml.v3"
)

// writeResults writes the results out in the format given.
func writeResults(w io.Writer, format string, degrees bool, results []Result) error {

	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
		return enc.Close()
	}

	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, formatText(result, degrees)); err != nil {
			return err
		}
	}

	return nil

}

func formatText(result Result, degrees bool) string {

	unit := "rad"
	if degrees {
		unit = "deg"
	}

	var sb strings.Builder

	if result.Name != "" {
		fmt.Fprintf(&sb, "%s (from %s)\n", result.Name, result.Input)
	}

	fmt.Fprintf(&sb, "euler (x, y, z) %s:   %s\n", unit, joinFloats(result.Euler[:]))
	fmt.Fprintf(&sb, "  candidate a:        %s\n", joinFloats(result.Candidates[0][:]))
	fmt.Fprintf(&sb, "  candidate b:        %s\n", joinFloats(result.Candidates[1][:]))
	if result.GimbalLock {
		sb.WriteString("  gimbal lock: yaw is fixed at 0\n")
	}
	fmt.Fprintf(&sb, "quaternion (w, x, y, z): %s\n", joinFloats(result.Quaternion[:]))
	sb.WriteString("matrix:\n")
	for _, row := range result.Matrix {
		fmt.Fprintf(&sb, "  %s\n", joinFloats(row[:]))
	}

	return sb.String()

}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		// Clean up signed zeros and tiny residue so the output is readable.
		if v > -1e-12 && v < 1e-12 {
			v = 0
		}
		parts[i] = strconv.FormatFloat(v, 'g', 8, 64)
	}
	return strings.Join(parts, ", ")
}
