package visuals

import (
	"fmt"
	"math"
	"strings"

	"ccm-mcp/internal/views"
)

// GenerateHistogramChart creates a Mermaid xychart-beta bar chart for a
// project-count histogram.
func GenerateHistogramChart(title string, buckets []views.HistogramBucket) string {
	if len(buckets) == 0 {
		return ""
	}

	var labels []string
	var counts []string
	maxCount := 0

	for _, b := range buckets {
		labels = append(labels, fmt.Sprintf("%q", b.Label))
		counts = append(counts, fmt.Sprintf("%d", b.Count))
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title %q\n", title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Projetos\" 0 --> %d\n", maxCount+1))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(counts, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateTimelineChart creates a Mermaid line chart for the monthly market
// timeline (transacted volume per month).
func GenerateTimelineChart(points []views.MonthlyPoint) string {
	if len(points) == 0 {
		return ""
	}

	var labels []string
	var volumes []string
	maxVolume := 0.0

	for _, p := range points {
		labels = append(labels, p.Month)
		volumes = append(volumes, fmt.Sprintf("%.1f", p.Volume))
		if p.Volume > maxVolume {
			maxVolume = p.Volume
		}
	}

	// Scale the Y-axis to give breathing room above the peak month.
	maxY := int(math.Ceil(maxVolume * 1.2))
	if maxY < 1 {
		maxY = 1
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Volume Transacionado por Mês\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Volume\" 0 --> %d\n", maxY))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(volumes, ", ")))
	sb.WriteString("```")
	return sb.String()
}
