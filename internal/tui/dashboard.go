package tui

import (
	"fmt"
	"strings"

	"github.com/studytrail/studytrail/internal/mastery"
)

// Standing pairs one learning objective with the student's current mastery
// result on it, for dashboard rendering.
type Standing struct {
	Index  int
	Text   string
	Result mastery.Result
}

// RenderDashboard renders a static progress view for one module: each
// objective with its status, streak, and recommendation.
func RenderDashboard(title string, standings []Standing) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	mastered := 0
	for _, s := range standings {
		if s.Result.Status == mastery.StatusMastered {
			mastered++
		}
	}
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%d of %d objectives mastered", mastered, len(standings))))
	b.WriteString("\n\n")

	for _, s := range standings {
		status := string(s.Result.Status)
		line := fmt.Sprintf("%s %s", statusIcon(status), s.Text)
		b.WriteString(statusStyle(status).Render(line))
		b.WriteString("\n")

		detail := statusDetail(s.Result)
		if detail != "" {
			fmt.Fprintf(&b, "  %s\n", subtitleStyle.Render(detail))
		}
		fmt.Fprintf(&b, "  %s\n", hintStyle.Render(s.Result.Recommendation))
	}

	return b.String()
}

func statusDetail(r mastery.Result) string {
	var parts []string
	if r.Streak > 0 {
		parts = append(parts, fmt.Sprintf("streak %d", r.Streak))
	}
	if n := len(r.CorrectFormats); n > 0 {
		parts = append(parts, fmt.Sprintf("%d format(s) correct", n))
	}
	if r.RecentMajorMistake {
		parts = append(parts, "recent major mistake")
	}
	return strings.Join(parts, " · ")
}
