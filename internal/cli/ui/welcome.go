package ui

import "fmt"

// PrintWelcome выводит приветствие
func PrintWelcome() {
	fmt.Println(ColorBold + IconTree + " a11ytree v0.1.0" + ColorReset)
	fmt.Println(ColorGray + "Компактное дерево доступности страницы для языковой модели" + ColorReset)
	fmt.Println()
	PrintHelp()
	fmt.Println(ColorCyan + IconBulb + " Совет:" + ColorReset + " откройте страницу через " + ColorYellow + "open" + ColorReset + ", затем снимите дерево командой " + ColorYellow + "tree" + ColorReset)
	fmt.Println()
}

// PrintHelp выводит список доступных команд
func PrintHelp() {
	fmt.Println(ColorYellow + IconList + " Доступные команды:" + ColorReset)
	fmt.Println("  " + ColorGreen + "open" + ColorReset + " <url>          - Открыть URL в браузере")
	fmt.Println("  " + ColorGreen + "tree" + ColorReset + " [селектор]     - Дерево доступности текущей страницы")
	fmt.Println("  " + ColorGreen + "yaml" + ColorReset + " [селектор]     - То же дерево строгим YAML")
	fmt.Println("  " + ColorGreen + "file" + ColorReset + " <путь>         - Дерево доступности HTML-файла")
	fmt.Println("  " + ColorGreen + "close" + ColorReset + "               - Закрыть браузер")
	fmt.Println("  " + ColorGreen + "clear" + ColorReset + "               - Очистить экран")
	fmt.Println("  " + ColorGreen + "exit" + ColorReset + "                - Выход")
	fmt.Println()
}
