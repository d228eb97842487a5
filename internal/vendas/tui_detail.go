package vendas

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// openDetail enters the detail card for one record. The record comes from
// the list and stays read-only; only the observation draft is local.
func (m Model) openDetail(sale Sale) Model {
	m.selected = &sale
	m.perms = PermissionsFor(m.session, &sale)
	m.state = detailIdle

	ta := textarea.New()
	ta.Placeholder = "Observação"
	ta.SetWidth(60)
	ta.SetHeight(6)
	if sale.Observation != nil {
		ta.SetValue(*sale.Observation)
	}
	m.observation = ta

	if m.width > 0 {
		m.detailBody = viewport.New(m.width-4, m.height-8)
	}
	m.view = ViewSaleDetail
	m.refreshDetailBody()
	return m
}

// draftObservation returns the current draft. An untouched empty draft on a
// record whose observation is null stays null.
func (m Model) draftObservation() *string {
	v := m.observation.Value()
	if v == "" && m.selected.Observation == nil {
		return nil
	}
	return &v
}

func (m Model) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case detailConfirmingDelete:
		switch msg.String() {
		case "y":
			// The dialog stays open until the request completes; a failure
			// leaves it up for a retry.
			return m, m.deleteSale(m.selected.ID)
		case "n", "esc":
			m.state = detailIdle
			m.modalLock.Release()
		}
		return m, nil

	case detailEditingObservation:
		switch msg.String() {
		case "esc":
			m.state = detailIdle
			m.modalLock.Release()
			m.observation.Blur()
			m.refreshDetailBody()
			return m, nil
		case "ctrl+s":
			if m.perms.CanSaveObservation {
				return m, m.saveObservation(m.selected.ID)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.observation, cmd = m.observation.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.view = ViewSales
		m.selected = nil
		return m, nil

	case "o", "enter":
		// Viewing the observation is open to any viewer.
		m.state = detailEditingObservation
		m.modalLock.Acquire()
		m.observation.Focus()
		return m, textarea.Blink

	case "d":
		if m.perms.CanDelete {
			m.state = detailConfirmingDelete
			m.modalLock.Acquire()
		}
		return m, nil

	case "e":
		if m.perms.CanEdit {
			m.initEditForm()
			m.view = ViewEditSale
		}
		return m, nil
	}

	if !m.modalLock.Held() {
		var cmd tea.Cmd
		m.detailBody, cmd = m.detailBody.Update(msg)
		return m, cmd
	}
	return m, nil
}

// saveObservation sends the full record with the new observation. The
// payload is assembled up front so the request carries the draft as it was
// at trigger time.
func (m Model) saveObservation(id string) tea.Cmd {
	payload := m.selected.BuildUpdatePayload(m.session.ID, m.draftObservation())
	return func() tea.Msg {
		if err := m.client.UpdateSale(id, payload); err != nil {
			return errorMsg{err}
		}
		return saleSavedMsg{id}
	}
}

func (m Model) deleteSale(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.client.DeleteSale(id); err != nil {
			return errorMsg{err}
		}
		return saleDeletedMsg{id}
	}
}

func (m *Model) refreshDetailBody() {
	if m.selected == nil {
		return
	}
	m.detailBody.SetContent(m.renderCard())
}

func (m Model) renderDetail() string {
	if m.selected == nil {
		return "\n  Sem dados"
	}

	switch m.state {
	case detailConfirmingDelete:
		return m.renderConfirmDelete()
	case detailEditingObservation:
		return m.renderObservationModal()
	}
	return m.detailBody.View()
}

func (m Model) renderCard() string {
	sale := m.selected
	kind := ClassifyDocument(sale.CpfCnpj)

	var b strings.Builder
	b.WriteString(titleStyle.Render(" Venda: "+sale.CustomerName) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s %s\n", kind.Glyph(), fieldLabelStyle.Render(kind.Label()), sale.CpfCnpj))

	fields := []struct {
		label string
		value string
	}{
		{"UF:", sale.Region},
		{"Ticket:", sale.Ticket},
		{"N° Binado:", sale.CallerIDPhone},
		{"N° Contato:", sale.Phone},
		{"Data da Venda:", FormatDate(sale.SaleDate)},
		{"Velocidade:", sale.InternetPlanSpeed},
		{"Pagamento:", sale.PaymentMethod},
		{"Data da Instalação:", FormatDate(sale.InstallationDate)},
		{"Horário:", sale.InstallationShift},
		{"Tipo:", sale.InternetType},
		{"Os:", sale.ServiceOrder},
		{"Ramal:", sale.Extension},
	}
	for _, f := range fields {
		b.WriteString(fmt.Sprintf("  %s %s\n", fieldLabelStyle.Render(f.label), f.value))
	}

	b.WriteString(fmt.Sprintf("\n  %s %s\n", fieldLabelStyle.Render("Status:"), StatusLabel(sale.Status)))

	observation := m.observation.Value()
	if observation == "" {
		observation = "-"
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", fieldLabelStyle.Render("Observação:"), observation))

	if m.session.Role == RoleSupervisor {
		b.WriteString("\n" + agentStyle.Render(fmt.Sprintf("  Agente: %s (%s)", sale.User.Name, sale.User.EmployeeID)) + "\n")
	}

	return cardStyle(sale.Status.Visual()).Render(b.String())
}

func (m Model) renderConfirmDelete() string {
	content := fmt.Sprintf(`
  Tem certeza que deseja excluir?

  %s (%s)

  [y] Sim    [n] Não
`, m.selected.CustomerName, m.selected.Ticket)

	return boxStyle.Render(content)
}

func (m Model) renderObservationModal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Observação ") + "\n\n")
	b.WriteString(m.observation.View())
	b.WriteString("\n\n")
	if m.perms.CanSaveObservation {
		b.WriteString(helpStyle.Render("[ctrl+s] Salvar    [esc] Sair sem salvar"))
	} else {
		b.WriteString(helpStyle.Render("[esc] Sair"))
	}
	return boxStyle.Render(b.String())
}

var editFormLabels = []string{
	"CPF/CNPJ:", "UF:", "Ticket:", "N° Binado:", "N° Contato:",
	"Velocidade:", "Pagamento:", "Tipo:", "Horário:",
	"Nome do Cliente:", "Os:", "Ramal:",
}

// initEditForm initializes the edit form pre-filled from the record.
func (m *Model) initEditForm() {
	sale := m.selected
	values := []string{
		sale.CpfCnpj, sale.Region, sale.Ticket, sale.CallerIDPhone, sale.Phone,
		sale.InternetPlanSpeed, sale.PaymentMethod, sale.InternetType, sale.InstallationShift,
		sale.CustomerName, sale.ServiceOrder, sale.Extension,
	}

	m.inputs = make([]textinput.Model, len(values))
	for i, v := range values {
		input := textinput.New()
		input.Placeholder = strings.TrimSuffix(editFormLabels[i], ":")
		input.SetValue(v)
		m.inputs[i] = input
	}
	m.inputs[0].Focus()
	m.focusIndex = 0
}

func (m Model) updateEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusIndex++
		if m.focusIndex >= len(m.inputs) {
			m.focusIndex = 0
		}
		return m, m.updateEditFocus()

	case "shift+tab", "up":
		m.focusIndex--
		if m.focusIndex < 0 {
			m.focusIndex = len(m.inputs) - 1
		}
		return m, m.updateEditFocus()

	case "enter":
		return m, m.submitEditForm()

	case "esc":
		m.view = ViewSaleDetail
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateEditFocus() tea.Cmd {
	for i := range m.inputs {
		if i == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return nil
}

// submitEditForm sends the full record with the edited fields. Scheduling
// dates and status are not edited here and travel unchanged.
func (m Model) submitEditForm() tea.Cmd {
	sale := m.selected
	payload := sale.BuildUpdatePayload(m.session.ID, sale.Observation)
	payload.CpfCnpj = m.inputs[0].Value()
	payload.Region = m.inputs[1].Value()
	payload.Ticket = m.inputs[2].Value()
	payload.CallerIDPhone = m.inputs[3].Value()
	payload.Phone = m.inputs[4].Value()
	payload.InternetPlanSpeed = m.inputs[5].Value()
	payload.PaymentMethod = m.inputs[6].Value()
	payload.InternetType = m.inputs[7].Value()
	payload.InstallationShift = m.inputs[8].Value()
	payload.CustomerName = m.inputs[9].Value()
	payload.ServiceOrder = m.inputs[10].Value()
	payload.Extension = m.inputs[11].Value()

	id := sale.ID
	return func() tea.Msg {
		if err := m.client.UpdateSale(id, payload); err != nil {
			return errorMsg{err}
		}
		return saleSavedMsg{id}
	}
}

func (m Model) renderEditForm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Editar Venda ") + "\n\n")

	for i, input := range m.inputs {
		b.WriteString(fmt.Sprintf("  %s\n", fieldLabelStyle.Render(editFormLabels[i])))
		b.WriteString(fmt.Sprintf("  %s\n\n", input.View()))
	}

	return boxStyle.Render(b.String())
}
