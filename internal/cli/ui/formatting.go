package ui

import (
	"fmt"
	"time"
)

// FormatSummary возвращает строку со статистикой построенного дерева
func FormatSummary(roots, chars int, truncated bool, elapsed time.Duration) string {
	icon, color := IconCheckmark, ColorGreen
	note := ""
	if truncated {
		icon, color = IconScissors, ColorYellow
		note = ", обрезано по лимиту"
	}
	if roots == 0 {
		icon, color = IconCross, ColorGray
	}
	return fmt.Sprintf("%s%s корней: %d, символов: %d%s, %s%s",
		color, icon, roots, chars, note, elapsed.Round(time.Microsecond), ColorReset)
}

// ClearScreen очищает терминал
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
