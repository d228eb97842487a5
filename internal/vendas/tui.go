package vendas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info
const (
	Version = "0.4.1"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#312E38")).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#333333")).
			Padding(0, 1)

	sellerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	supervisorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF9500")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	creditStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cdcd69")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#cdcd69")).
			Padding(1, 2)

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	agentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	// Card styles per visual state
	cardSuccess = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0a8d3c")).
			Background(lipgloss.Color("#35530e")).
			Padding(1, 2)

	cardFailure = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#a80f14")).
			Background(lipgloss.Color("#82181a")).
			Padding(1, 2)

	cardWarning = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#dfc011")).
			Background(lipgloss.Color("#f0b000")).
			Foreground(lipgloss.Color("#000000")).
			Padding(1, 2)

	cardNeutral = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#312E38")).
			Padding(1, 2)
)

func cardStyle(v VisualState) lipgloss.Style {
	switch v {
	case VisualSuccess:
		return cardSuccess
	case VisualFailure:
		return cardFailure
	case VisualWarning:
		return cardWarning
	}
	return cardNeutral
}

// View represents different screens
type View int

const (
	ViewSales View = iota
	ViewSaleDetail
	ViewEditSale
)

// detailState is the modal state of the sale detail card. Exactly one state
// is active at a time; the confirm-delete and observation dialogs can never
// be open together.
type detailState int

const (
	detailIdle detailState = iota
	detailConfirmingDelete
	detailEditingObservation
)

// saleListItem adapts a sale for the record list.
type saleListItem struct {
	sale Sale
}

func (i saleListItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.sale.CustomerName, i.sale.CpfCnpj)
}

func (i saleListItem) Description() string {
	return fmt.Sprintf("%s • Venda: %s • Ticket: %s",
		StatusLabel(i.sale.Status), FormatDate(i.sale.SaleDate), i.sale.Ticket)
}

func (i saleListItem) FilterValue() string {
	return i.sale.CustomerName + " " + i.sale.CpfCnpj + " " + i.sale.Ticket
}

// Model is the main TUI model
type Model struct {
	client  *Client
	session Session

	view   View
	width  int
	height int

	salesList list.Model

	// Detail card state. The selected record is supplied by the list and
	// held read-only; observation carries the in-progress draft.
	selected    *Sale
	perms       Permissions
	state       detailState
	observation textarea.Model
	detailBody  viewport.Model
	modalLock   scrollLock

	// Edit form
	inputs     []textinput.Model
	focusIndex int

	spinner     spinner.Model
	loading     bool
	message     string
	messageType string
}

// Messages
type salesLoadedMsg struct {
	sales []Sale
}

type errorMsg struct {
	err error
}

type saleSavedMsg struct {
	id string
}

type saleDeletedMsg struct {
	id string
}

// NewTUI creates a new TUI model
func NewTUI(client *Client, session Session) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdcd69"))

	salesList := list.New(nil, delegate, 0, 0)
	salesList.Title = client.Config.Brand
	salesList.SetShowStatusBar(true)
	salesList.SetFilteringEnabled(true)
	salesList.Styles.Title = titleStyle

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdcd69"))

	return Model{
		client:    client,
		session:   session,
		view:      ViewSales,
		salesList: salesList,
		spinner:   s,
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSales(),
		m.spinner.Tick,
	)
}

func (m Model) loadSales() tea.Cmd {
	return func() tea.Msg {
		sales, err := m.client.ListSales()
		if err != nil {
			return errorMsg{err}
		}
		return salesLoadedMsg{sales}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// Scrolling must be restored even when quitting mid-modal.
			m.modalLock.Release()
			return m, tea.Quit
		}

		m.message = ""
		m.messageType = ""

		switch m.view {
		case ViewSales:
			return m.updateSalesKeys(msg)
		case ViewSaleDetail:
			return m.updateDetailKeys(msg)
		case ViewEditSale:
			return m.updateEditKeys(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		h := msg.Height - 8
		w := msg.Width - 4
		m.salesList.SetSize(w, h)

		m.detailBody = viewport.New(w, h)
		if m.selected != nil {
			m.refreshDetailBody()
		}

	case salesLoadedMsg:
		m.loading = false
		items := make([]list.Item, len(msg.sales))
		for i, sale := range msg.sales {
			items[i] = saleListItem{sale}
		}
		m.salesList.SetItems(items)
		return m, nil

	case saleSavedMsg:
		// Navigation is issued only after the request completed.
		m.state = detailIdle
		m.modalLock.Release()
		m.view = ViewSales
		m.selected = nil
		m.loading = true
		return m, m.loadSales()

	case saleDeletedMsg:
		m.state = detailIdle
		m.modalLock.Release()
		m.view = ViewSales
		m.selected = nil
		m.loading = true
		return m, m.loadSales()

	case errorMsg:
		// A failed save or delete leaves the dialog open and the lock held
		// until the user retries or leaves.
		m.loading = false
		m.message = msg.err.Error()
		m.messageType = "error"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateSalesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, every key belongs to the list.
	if m.salesList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.salesList, cmd = m.salesList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "r":
		m.loading = true
		return m, m.loadSales()

	case "enter":
		if item, ok := m.salesList.SelectedItem().(saleListItem); ok {
			return m.openDetail(item.sale), nil
		}
	}

	var cmd tea.Cmd
	m.salesList, cmd = m.salesList.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.width == 0 {
		return "Carregando..."
	}

	var content string

	switch m.view {
	case ViewSales:
		if m.loading {
			content = fmt.Sprintf("\n  %s Carregando vendas...", m.spinner.View())
		} else {
			content = m.salesList.View()
		}
	case ViewSaleDetail:
		content = m.renderDetail()
	case ViewEditSale:
		content = m.renderEditForm()
	}

	var b strings.Builder

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n\n")
	b.WriteString(content)

	if m.message != "" {
		b.WriteString("\n\n")
		if m.messageType == "error" {
			b.WriteString(errorStyle.Render("Erro: " + m.message))
		} else {
			b.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	b.WriteString("\n")
	b.WriteString(creditStyle.Render(fmt.Sprintf("%s v%s", m.client.Config.Brand, Version)))

	return b.String()
}

func (m Model) renderStatusBar() string {
	var role string
	if m.session.Role == RoleSeller {
		role = sellerStyle.Render("● vendedor")
	} else {
		role = supervisorStyle.Render("● supervisor")
	}

	status := fmt.Sprintf(" %s | %s | %s | %s ",
		m.client.Config.Brand, m.session.Name, role, m.client.Config.APIURL)
	return statusBarStyle.Render(status)
}

func (m Model) renderHelp() string {
	var help string
	switch m.view {
	case ViewSales:
		help = "↑/↓: navegar • enter: abrir • /: buscar • r: atualizar • q: sair"
	case ViewSaleDetail:
		switch m.state {
		case detailConfirmingDelete:
			help = "y: sim, excluir • n: não"
		case detailEditingObservation:
			if m.perms.CanSaveObservation {
				help = "ctrl+s: salvar • esc: sair sem salvar"
			} else {
				help = "esc: sair"
			}
		default:
			parts := []string{"↑/↓: rolar", "o: observação"}
			if m.perms.CanEdit {
				parts = append(parts, "e: editar")
			}
			if m.perms.CanDelete {
				parts = append(parts, "d: excluir")
			}
			parts = append(parts, "esc: voltar")
			help = strings.Join(parts, " • ")
		}
	case ViewEditSale:
		help = "tab: próximo campo • enter: salvar • esc: cancelar"
	}
	return helpStyle.Render(help)
}

// RunTUI starts the TUI
func RunTUI(client *Client) error {
	p := tea.NewProgram(NewTUI(client, client.Config.Session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
