package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idursun/lazyview/internal/config"
	"github.com/idursun/lazyview/internal/lazy"
	"github.com/idursun/lazyview/internal/ui"
	"github.com/idursun/lazyview/internal/ui/lazylist"
	"github.com/idursun/lazyview/internal/ui/lazypane"
)

var fragments = []string{
	"The renderer walks the damage list and repaints only the rows that changed.",
	"Escape sequences are parsed into cells before any measurement happens.",
	"Wide runes occupy two cells; the shaper accounts for that when wrapping.",
	"Scrollback is a ring buffer, so eviction is a pointer bump.",
	"Each frame diff is computed against the previously flushed buffer.",
	"Hyperlink state survives wrapping because it is carried per cell.",
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the config file")
	itemCount := flag.Int("items", 40, "number of lazily loaded items")
	flag.Parse()

	if path := os.Getenv("LAZYVIEW_LOG"); path != "" {
		f, err := tea.LogToFile(path, "debug")
		if err != nil {
			log.Fatalf("could not open log file: %v", err)
		}
		defer f.Close()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	list := lazylist.New(buildItems(*itemCount),
		lazylist.WithCoordinatorOptions(cfg.CoordinatorOptions()...),
		lazylist.WithElementDefaults(cfg.ElementOptions()...),
	)
	pane := lazypane.New(buildEntries(),
		lazypane.WithCoordinatorOptions(cfg.CoordinatorOptions()...),
	)

	p := tea.NewProgram(ui.New(list, pane), tea.WithAltScreen(), tea.WithMouseCellMotion())
	list.SetSend(p.Send)
	pane.SetSend(p.Send)
	if _, err := p.Run(); err != nil {
		log.Fatalf("lazyview: %v", err)
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lazyview", "config.toml")
}

// buildItems produces items whose loaders are deliberately slow, standing in
// for expensive render work like syntax highlighting or image decoding.
func buildItems(n int) []*lazylist.Item {
	items := make([]*lazylist.Item, 0, n)
	for i := 0; i < n; i++ {
		i := i
		loader := func() string {
			time.Sleep(150 * time.Millisecond)
			var b strings.Builder
			for j := 0; j < 3+i%4; j++ {
				b.WriteString(fragments[(i+j)%len(fragments)])
				b.WriteString("\n")
			}
			return strings.TrimSuffix(b.String(), "\n")
		}
		var opts []lazy.ElementOption
		// Every fifth item renders once and drops out of tracking.
		if i%5 == 0 {
			opts = append(opts, lazy.Once())
		}
		items = append(items, lazylist.NewItem(fmt.Sprintf("section %02d", i), 4, loader, opts...))
	}
	return items
}

func buildEntries() []*lazypane.Entry {
	entries := make([]*lazypane.Entry, 0, 12)
	for i := 0; i < 12; i++ {
		body := strings.Repeat(fragments[i%len(fragments)]+"\n", 3)
		entries = append(entries, lazypane.NewEntry(fmt.Sprintf("note %02d", i), strings.TrimSuffix(body, "\n")))
	}
	return entries
}
