package views

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/weekplan/internal/model"
	"github.com/sandeepkv93/weekplan/internal/planner"
)

type DayBarData struct {
	Selected model.Day
	Today    model.Day
}

type DashboardData struct {
	Day      model.Day
	Today    model.Day
	Tasks    []model.Task
	Cursor   int
	Stats    planner.Stats
	Loading  bool
	Spinner  string
	ListView string
}

type TimetableData struct {
	Grid     planner.Timetable
	Selected model.Day
	// ColumnWidth is the width of one day column. Zero selects the default.
	ColumnWidth int
}

type AnalyticsData struct {
	Summary []model.DaySummary
	Week    planner.Stats
	Today   model.Day
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

const (
	defaultColumnWidth = 10
	barWidth           = 20
)

// RenderDayBar lists the week with the selected day bracketed and today
// starred.
func RenderDayBar(data DayBarData) string {
	parts := make([]string, 0, 7)
	for _, day := range model.Days() {
		label := day.Short()
		if day == data.Today {
			label += "*"
		}
		if day == data.Selected {
			parts = append(parts, accentStyle.Render("["+label+"]"))
			continue
		}
		parts = append(parts, " "+label+" ")
	}
	return strings.Join(parts, " ")
}

// RenderTaskLine is one list row: checkbox, time span, title and badges.
func RenderTaskLine(task model.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}
	title := categoryStyle(task.Category.Color()).Render(task.Title)
	if task.Completed {
		title = mutedStyle.Strikethrough(true).Render(task.Title)
	}
	return fmt.Sprintf("%s %s %s  %s  (%s, %s)",
		cursor, check, TimeSpan(task), title, task.Category, PriorityBadge(task.Priority))
}

// TimeSpan renders "9:00 AM - 10:30 AM", keeping raw text that does not parse.
func TimeSpan(task model.Task) string {
	start := model.FormatTime12h(task.StartTime)
	if start == "" {
		start = task.StartTime
	}
	end := model.FormatTime12h(task.EndTime)
	if end == "" {
		end = task.EndTime
	}
	return start + " - " + end
}

func PriorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return "HIGH"
	case model.PriorityLow:
		return "low"
	default:
		return "med"
	}
}

func RenderTaskList(tasks []model.Task, cursor int) string {
	if len(tasks) == 0 {
		return "  (no tasks scheduled)"
	}
	lines := make([]string, 0, len(tasks))
	for i, task := range tasks {
		lines = append(lines, RenderTaskLine(task, i == cursor))
	}
	return strings.Join(lines, "\n")
}

func RenderStats(stats planner.Stats) string {
	return fmt.Sprintf("total: %d | completed: %d | progress: %d%% %s",
		stats.Total, stats.Completed, stats.Percentage, progressView(stats.Percentage))
}

func RenderDashboard(data DashboardData) string {
	var b strings.Builder
	b.WriteString(RenderDayBar(DayBarData{Selected: data.Day, Today: data.Today}) + "\n\n")
	b.WriteString(fmt.Sprintf("%s:\n", strings.ToLower(string(data.Day))))
	b.WriteString(RenderStats(data.Stats) + "\n")
	if data.Loading {
		b.WriteString(fmt.Sprintf("%s loading tasks\n", data.Spinner))
	}
	b.WriteString("\n")
	if data.ListView != "" {
		b.WriteString(data.ListView)
	} else {
		b.WriteString(RenderTaskList(data.Tasks, data.Cursor))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderTimetable draws the week grid. A cell shows its first task with its
// duration and a "+n" marker when more tasks start in the same hour. Later
// hours covered by a task carry a bar in its category color.
func RenderTimetable(data TimetableData) string {
	width := data.ColumnWidth
	if width <= 0 {
		width = defaultColumnWidth
	}
	cell := lipgloss.NewStyle().Width(width).MaxWidth(width)
	hourCol := lipgloss.NewStyle().Width(9).MaxWidth(9)

	header := []string{hourCol.Render("")}
	covered := make(map[model.Day]map[int]string, len(model.Days()))
	for _, day := range model.Days() {
		covered[day] = coveredHours(data.Grid, day)
		label := day.Short()
		if day == data.Selected {
			header = append(header, cell.Inherit(accentStyle).Render(label))
			continue
		}
		header = append(header, cell.Render(label))
	}

	rows := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}
	for _, hour := range planner.Hours() {
		cols := []string{hourCol.Render(model.Clock(hour * 60).Format12h())}
		for _, day := range model.Days() {
			text := cellText(data.Grid.Cell(day, hour), width)
			if color, ok := covered[day][hour]; ok && len(data.Grid.Cell(day, hour)) == 0 {
				text = categoryStyle(color).Render("│")
			}
			cols = append(cols, cell.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	}
	return strings.Join(rows, "\n")
}

// coveredHours maps each hour after a task's start hour that the task still
// runs into to the color of the first such task.
func coveredHours(grid planner.Timetable, day model.Day) map[int]string {
	out := map[int]string{}
	for _, hour := range planner.Hours() {
		for _, entry := range grid.Cell(day, hour) {
			start, err := entry.Task.Start()
			if err != nil {
				continue
			}
			end := int(start) + int(math.Round(entry.Duration*60))
			for next := hour + 1; next <= planner.LastHour && next*60 < end; next++ {
				if _, ok := out[next]; !ok {
					out[next] = entry.Color
				}
			}
		}
	}
	return out
}

func cellText(entries []planner.Entry, width int) string {
	if len(entries) == 0 {
		return mutedStyle.Render("·")
	}
	first := entries[0]
	suffix := " " + FormatHours(first.Duration) + "h"
	if len(entries) > 1 {
		suffix += fmt.Sprintf("+%d", len(entries)-1)
	}
	room := width - len(suffix)
	if room < 1 {
		room = 1
	}
	text := truncate(first.Task.Title, room)
	style := categoryStyle(first.Color)
	if first.Task.Completed {
		style = style.Strikethrough(true)
	}
	return style.Render(text) + suffix
}

func RenderAnalytics(data AnalyticsData) string {
	var b strings.Builder
	b.WriteString("weekly analytics:\n\n")
	for _, day := range data.Summary {
		marker := " "
		if day.Day == data.Today {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %-9s %2d/%-2d %3d%% %s\n",
			marker, day.Day, day.Completed, day.Total, day.Percentage, progressView(day.Percentage)))
	}
	b.WriteString(fmt.Sprintf("\nweek: %d/%d completed (%d%%)", data.Week.Completed, data.Week.Total, data.Week.Percentage))
	return b.String()
}

// TaskMarkdown is the markdown body of the details pane.
func TaskMarkdown(task model.Task) string {
	var b strings.Builder
	b.WriteString("# " + task.Title + "\n\n")
	b.WriteString(fmt.Sprintf("- **Day:** %s\n", task.Day))
	b.WriteString(fmt.Sprintf("- **Time:** %s\n", TimeSpan(task)))
	if start, err := task.Start(); err == nil {
		if end, err := task.End(); err == nil {
			b.WriteString(fmt.Sprintf("- **Duration:** %sh\n", FormatHours(start.HoursUntil(end))))
		}
	}
	b.WriteString(fmt.Sprintf("- **Category:** %s\n", task.Category))
	b.WriteString(fmt.Sprintf("- **Priority:** %s\n", task.Priority))
	status := "pending"
	if task.Completed {
		status = "done"
	}
	b.WriteString(fmt.Sprintf("- **Status:** %s\n", status))
	if strings.TrimSpace(task.Description) != "" {
		b.WriteString("\n" + task.Description + "\n")
	}
	return b.String()
}

func RenderTaskDetails(task *model.Task) string {
	if task == nil {
		return "details:\n(no selection)"
	}
	return RenderMarkdown(TaskMarkdown(*task))
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderConfirm(prompt string) string {
	if prompt == "" {
		return ""
	}
	return errorStyle.Render(prompt + " [y/n]")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

var progressBar = progress.New(
	progress.WithDefaultGradient(),
	progress.WithWidth(barWidth),
	progress.WithoutPercentage(),
)

func progressView(pct int) string {
	return progressBar.ViewAs(float64(pct) / 100)
}

// FormatHours prints a duration in hours with at most two decimals.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
