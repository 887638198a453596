// Package categories implements the category chooser screen.
package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vocabquiz/internal/quiz"
	"github.com/abhisek/vocabquiz/internal/router"
	"github.com/abhisek/vocabquiz/internal/screen"
	"github.com/abhisek/vocabquiz/internal/ui/components"
	"github.com/abhisek/vocabquiz/internal/ui/layout"
	"github.com/abhisek/vocabquiz/internal/ui/theme"
)

// SelectedMsg is delivered to the screen underneath once a category is picked.
type SelectedMsg struct {
	Key string
}

// ChooserScreen lists "All (<total>)" followed by every category with its
// question count, in first-seen order.
type ChooserScreen struct {
	menu components.Menu
	keys []string
}

var _ screen.Screen = (*ChooserScreen)(nil)
var _ screen.KeyHintProvider = (*ChooserScreen)(nil)

// New builds the chooser for pool with active highlighted.
func New(pool *quiz.Pool, active string) *ChooserScreen {
	keys := append([]string{quiz.AllCategories}, pool.Categories()...)
	items := make([]components.MenuItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, components.MenuItem{
			Label:  Label(pool, key),
			Action: selectCmd(key),
			Active: key == active,
		})
	}
	return &ChooserScreen{
		menu: components.NewMenu(items),
		keys: keys,
	}
}

// Label renders "<label> (<count>)" for a category key.
func Label(pool *quiz.Pool, key string) string {
	return fmt.Sprintf("%s (%d)", quiz.CategoryLabel(key), pool.Count(key))
}

func selectCmd(key string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PopScreenMsg{Then: SelectedMsg{Key: key}}
		}
	}
}

func (c *ChooserScreen) Init() tea.Cmd {
	return nil
}

func (c *ChooserScreen) Title() string {
	return "Categories"
}

func (c *ChooserScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// Keys returns the category keys in menu order.
func (c *ChooserScreen) Keys() []string {
	return c.keys
}

// Cursor returns the key under the cursor.
func (c *ChooserScreen) Cursor() string {
	if c.menu.Selected < 0 || c.menu.Selected >= len(c.keys) {
		return ""
	}
	return c.keys[c.menu.Selected]
}

func (c *ChooserScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	c.menu, cmd = c.menu.Update(msg)
	return c, cmd
}

func (c *ChooserScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Choose a category"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, c.menu.View()))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
