// Package display holds terminal presentation helpers shared by the CLI
// commands.
package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("213"))

const bannerArt = ` __  __       _        __  __ ____  _  _
|  \/  | __ _| | _____|  \/  |  _ \| || |  ___
| |\/| |/ _` + "`" + ` | |/ / _ \ |\/| | |_) | || |_/ __|
| |  | | (_| |   <  __/ |  | |  __/|__   _\__ \
|_|  |_|\__,_|_|\_\___|_|  |_|_|      |_| |___/`

// PrintBanner prints the ASCII art banner.
func PrintBanner() {
	fmt.Fprintln(os.Stdout, bannerStyle.Render(bannerArt))
}
