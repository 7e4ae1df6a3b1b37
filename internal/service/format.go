package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ratesbot/internal/domain"
)

// Action is one inline keyboard button: a visible label and the callback
// data the router dispatches on.
type Action struct {
	Label string
	Data  string
}

// View is a fully rendered screen: message text plus keyboard actions laid
// out Columns buttons per row.
type View struct {
	Text    string
	Actions []Action
	Columns int
}

// Callback data values understood by the router.
const (
	ActionShowRates   = "show_rates"
	ActionToSelection = "back_to_selection"
	BasePrefix        = "base_"
	SelectPrefix      = "select_"
)

// keyboardWidth is the visual budget of one rates row in characters.
const keyboardWidth = 40

const unavailableMarker = "—"

// FormatValue renders a number with space-separated thousands and two
// decimal places. Non-finite values render as the unavailable marker.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return unavailableMarker
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	b.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(fracPart)

	return b.String()
}

// RenderRates renders the rates screen: one row per selected currency with
// the converted value, all rows aligned to a common width, the base row
// marked with a star. When nothing can be shown (empty selection, base not
// selected, or base missing from the rate set) it renders the fallback
// screen pointing at currency selection instead.
func RenderRates(values map[string]float64, selected []string, base string, now time.Time) View {
	if len(selected) == 0 || base == "" || !contains(selected, base) {
		return fallbackView()
	}
	if _, ok := values[base]; !ok {
		return fallbackView()
	}

	maxValueWidth := 0
	for _, code := range selected {
		v, ok := values[code]
		if !ok {
			continue
		}
		if w := utf8.RuneCountInString(FormatValue(v)); w > maxValueWidth {
			maxValueWidth = w
		}
	}
	labelColumn := keyboardWidth - maxValueWidth

	actions := make([]Action, 0, len(selected)+1)
	for _, code := range selected {
		v, ok := values[code]
		if !ok {
			continue
		}
		actions = append(actions, Action{
			Label: formatRatesRow(code, v, labelColumn, maxValueWidth, code == base),
			Data:  BasePrefix + code,
		})
	}
	actions = append(actions, Action{Label: "🔙 Изменить выбор валют", Data: ActionToSelection})

	text := fmt.Sprintf("Курсы валют\nОбновлено: %s", now.Format("02.01.2006 15:04:05"))

	return View{Text: text, Actions: actions, Columns: 1}
}

// formatRatesRow builds one aligned keyboard label. The value is left-padded
// to the widest value in the set and the label column absorbs the rest, so
// every row ends up the same total width. The star marking the base row
// replaces one padding space.
func formatRatesRow(code string, value float64, labelColumn, valueWidth int, isBase bool) string {
	label := code
	if flag := domain.CurrencyFlag(code); flag != "" {
		label = flag + " " + code
	}

	padding := labelColumn - utf8.RuneCountInString(label)
	if padding < 1 {
		padding = 1
	}

	var gap string
	if isBase {
		left := (padding - 1) / 2
		gap = strings.Repeat(" ", left) + "⭐" + strings.Repeat(" ", padding-1-left)
	} else {
		gap = strings.Repeat(" ", padding)
	}

	valuePart := FormatValue(value)
	if pad := valueWidth - utf8.RuneCountInString(valuePart); pad > 0 {
		valuePart = strings.Repeat(" ", pad) + valuePart
	}

	return label + gap + valuePart
}

// RenderSelection renders the currency selection screen: every known
// currency as a toggle button in a four-wide grid, selected ones marked,
// with a trailing "show rates" button.
func RenderSelection(all []string, selected []string) View {
	actions := make([]Action, 0, len(all)+1)
	for _, code := range all {
		mark := "❌"
		if contains(selected, code) {
			mark = "✅"
		}
		actions = append(actions, Action{
			Label: mark + " " + code,
			Data:  SelectPrefix + code,
		})
	}
	actions = append(actions, Action{Label: "➡️ Показать курсы", Data: ActionShowRates})

	return View{
		Text:    "Выберите валюты для отслеживания:",
		Actions: actions,
		Columns: 4,
	}
}

func fallbackView() View {
	return View{
		Text: "Валюты не выбраны.\nОткройте выбор валют, чтобы настроить список.",
		Actions: []Action{
			{Label: "⚙️ Выбрать валюты", Data: ActionToSelection},
		},
		Columns: 1,
	}
}

func contains(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
