package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/futig/vectordb-client/internal/cli/render"
	"github.com/futig/vectordb-client/internal/pkg/logger"
)

// Item is one numbered menu entry.
type Item struct {
	Label  string
	Action string
	Run    func(ctx context.Context)
}

// Menu is a read-evaluate-print loop over numbered items. The exit entry is
// appended after the last item.
type Menu struct {
	title   string
	items   []Item
	console *Console
}

func NewMenu(title string, console *Console, items ...Item) *Menu {
	return &Menu{
		title:   title,
		items:   items,
		console: console,
	}
}

// Run shows the menu until the exit entry is chosen, input ends or ctx is
// cancelled. Operation failures are reported by the items themselves and
// never stop the loop.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.show()

		choice, err := m.console.Prompt(fmt.Sprintf(render.PromptChoice, m.exitChoice()))
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read choice: %w", err)
		}

		if !m.dispatch(ctx, choice) {
			m.console.Println(render.MsgExiting)
			return nil
		}
	}
}

func (m *Menu) show() {
	m.console.Printf("\n=== %s ===\n", m.title)
	for i, item := range m.items {
		m.console.Printf("    %d. %s\n", i+1, item.Label)
	}
	m.console.Printf("    %d. Exit\n", m.exitChoice())
}

// dispatch runs the item matching choice exactly and reports whether the
// loop should continue.
func (m *Menu) dispatch(ctx context.Context, choice string) bool {
	if choice == strconv.Itoa(m.exitChoice()) {
		return false
	}

	for i, item := range m.items {
		if choice == strconv.Itoa(i+1) {
			item.Run(logger.WithAction(ctx, item.Action))
			return true
		}
	}

	m.console.Println(render.MsgInvalidChoice)
	return true
}

func (m *Menu) exitChoice() int {
	return len(m.items) + 1
}
