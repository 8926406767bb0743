package tui

import (
	"fmt"
	"strings"

	"packy/internal/action"
	"packy/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type view int

const (
	viewCategories view = iota
	viewItems
	viewBags
	viewStages
)

type appModel struct {
	store *store.Store
	save  func() error

	width  int
	height int

	view view

	categoriesList list.Model
	itemsList      list.Model
	bagsList       list.Model
	stagesList     list.Model

	selectedCategoryID string
	status             string
}

func newAppModel(s *store.Store, save func() error) appModel {
	m := appModel{
		store: s,
		save:  save,
		view:  viewCategories,
	}

	m.categoriesList = newList("Categories", []list.Item{})
	m.itemsList = newList("Items", []list.Item{})
	m.bagsList = newList("Bags", []list.Item{})
	m.stagesList = newList("Stages", []list.Item{})

	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		// Don't steal keys while the user is typing a filter.
		if m.activeList().FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "b":
			m.view = viewBags
			m.refresh()
			return m, nil
		case "p":
			m.view = viewStages
			m.refresh()
			return m, nil
		case "u":
			if m.store.Undo() {
				m.afterMutation("undone")
			} else {
				m.status = "nothing to undo"
			}
			return m, nil
		case "esc", "backspace":
			if m.view != viewCategories {
				m.view = viewCategories
				m.refresh()
				return m, nil
			}
		case "enter":
			if m.view == viewCategories {
				if it, ok := m.categoriesList.SelectedItem().(categoryRow); ok {
					m.selectedCategoryID = it.category.ID
					action.SelectCategory(m.store, it.category.ID)
					m.view = viewItems
					m.refresh()
					return m, nil
				}
			}
		case " ", "x":
			switch m.view {
			case viewItems:
				if it, ok := m.itemsList.SelectedItem().(itemRow); ok {
					if err := action.ToggleItemPacked(m.store, it.item.ID); err == nil {
						m.afterMutation("")
					}
					return m, nil
				}
			case viewStages:
				if it, ok := m.stagesList.SelectedItem().(stageRow); ok && len(it.stage.Tasks) > 0 {
					// Toggle the first pending task; task-level browsing stays in the CLI.
					tk := action.TasksInOrder(it.stage)[0]
					for _, cand := range action.TasksInOrder(it.stage) {
						if !cand.Completed {
							tk = cand
							break
						}
					}
					if err := action.ToggleTaskCompleted(m.store, tk.ID); err == nil {
						m.afterMutation("")
					}
					return m, nil
				}
			}
		case "K":
			if m.view == viewItems {
				m.moveSelected(true)
				return m, nil
			}
		case "J":
			if m.view == viewItems {
				m.moveSelected(false)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.view {
	case viewCategories:
		m.categoriesList, cmd = m.categoriesList.Update(msg)
	case viewItems:
		m.itemsList, cmd = m.itemsList.Update(msg)
	case viewBags:
		m.bagsList, cmd = m.bagsList.Update(msg)
	case viewStages:
		m.stagesList, cmd = m.stagesList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	st := m.store.State()
	title := "packy"
	progress := ""
	if st.List != nil {
		if st.List.Trip.Name != "" {
			title = st.List.Trip.Name
		}
		p := action.PackingProgress(st.List)
		progress = fmt.Sprintf("%d/%d packed (%d%%)", p.Packed, p.Total, p.Percent)
	}
	header := lipgloss.NewStyle().Bold(true).Render(title + "  " + progress)
	if m.status != "" {
		header += "  " + lipgloss.NewStyle().Faint(true).Render(m.status)
	}

	var body string
	switch m.view {
	case viewCategories:
		body = m.categoriesList.View()
	case viewItems:
		body = m.itemsList.View()
	case viewBags:
		body = m.bagsList.View()
	case viewStages:
		body = m.stagesList.View()
	}

	help := "enter: open  space: toggle  J/K: reorder  b: bags  p: prep  u: undo  esc: back  q: quit"
	footer := lipgloss.NewStyle().Faint(true).Render(help)
	return strings.Join([]string{header, body, footer}, "\n\n")
}

func (m *appModel) activeList() *list.Model {
	switch m.view {
	case viewItems:
		return &m.itemsList
	case viewBags:
		return &m.bagsList
	case viewStages:
		return &m.stagesList
	default:
		return &m.categoriesList
	}
}

// moveSelected swaps the selected item with its neighbor in the visible
// category ordering.
func (m *appModel) moveSelected(up bool) {
	sel, ok := m.itemsList.SelectedItem().(itemRow)
	if !ok {
		return
	}
	idx := m.itemsList.Index()
	items := m.itemsList.Items()
	if up {
		if idx == 0 {
			return
		}
		target := items[idx-1].(itemRow)
		action.MoveItem(m.store, sel.item.ID, target.item.ID, orderBefore)
	} else {
		if idx >= len(items)-1 {
			return
		}
		target := items[idx+1].(itemRow)
		action.MoveItem(m.store, sel.item.ID, target.item.ID, orderAfter)
	}
	m.afterMutation("")
	selectRowByID(&m.itemsList, sel.item.ID)
}

func (m *appModel) afterMutation(status string) {
	m.status = status
	if m.save != nil {
		if err := m.save(); err != nil {
			m.status = "save failed: " + err.Error()
		}
	}
	m.refresh()
}

func (m *appModel) refresh() {
	st := m.store.State()
	if st.List == nil {
		return
	}
	doc := st.List

	curCat := ""
	if it, ok := m.categoriesList.SelectedItem().(categoryRow); ok {
		curCat = it.category.ID
	}
	m.categoriesList.SetItems(categoryRows(doc))
	if curCat != "" {
		selectRowByID(&m.categoriesList, curCat)
	}

	curItem := ""
	if it, ok := m.itemsList.SelectedItem().(itemRow); ok {
		curItem = it.item.ID
	}
	m.itemsList.SetItems(itemRows(doc, m.selectedCategoryID))
	if curItem != "" {
		selectRowByID(&m.itemsList, curItem)
	}

	m.bagsList.SetItems(bagRows(doc))
	m.stagesList.SetItems(stageRows(doc))
}

func (m *appModel) resizeLists() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.categoriesList.SetSize(w, h)
	m.itemsList.SetSize(w, h)
	m.bagsList.SetSize(w, h)
	m.stagesList.SetSize(w, h)
}
