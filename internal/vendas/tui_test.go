package vendas

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testSale() Sale {
	saleDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	obs := "observação original"
	return Sale{
		ID:                "s1",
		CpfCnpj:           "123.456.789-00",
		Region:            "SP",
		Ticket:            "T-1",
		CallerIDPhone:     "11 90000-0000",
		Phone:             "11 91111-1111",
		SaleDate:          &saleDate,
		InternetPlanSpeed: "500MB",
		PaymentMethod:     "Cartão",
		InternetType:      "Fibra",
		InstallationShift: "Manhã",
		CustomerName:      "Maria Souza",
		ServiceOrder:      "OS-1",
		Extension:         "104",
		Status:            StatusComPendencia,
		Observation:       &obs,
		User:              Agent{Name: "Carlos Lima", EmployeeID: "E100"},
	}
}

func newTestModel(apiURL, employeeID string, role Role) Model {
	config := &Config{
		APIURL:  apiURL,
		Session: Session{ID: "u1", EmployeeID: employeeID, Role: role, Name: "Tester"},
		Brand:   "Vendas CLI",
	}
	client := NewClient(config, nil)
	return NewTUI(client, config.Session)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestOwnershipGateBlocksDeleteAndEdit(t *testing.T) {
	t.Parallel()

	m := newTestModel("http://unused", "E999", RoleSeller)
	m = m.openDetail(testSale())

	m, cmd := update(t, m, keyRune('d'))
	require.Nil(t, cmd)
	require.Equal(t, detailIdle, m.state)
	require.False(t, m.modalLock.Held())

	m, _ = update(t, m, keyRune('e'))
	require.Equal(t, ViewSaleDetail, m.view)
}

func TestConfirmDeleteFlow(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, `{"deleted":"s1"}`)
	m := newTestModel(srv.URL, "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('d'))
	require.Equal(t, detailConfirmingDelete, m.state)
	require.True(t, m.modalLock.Held())

	m, cmd := update(t, m, keyRune('y'))
	require.NotNil(t, cmd)
	// The dialog stays open until the request completes.
	require.Equal(t, detailConfirmingDelete, m.state)
	require.True(t, m.modalLock.Held())

	msg := cmd()
	require.IsType(t, saleDeletedMsg{}, msg)
	require.Len(t, rec.all(), 1)
	require.Equal(t, http.MethodDelete, rec.all()[0].method)

	// Navigation happens only after completion: back to the list, lock
	// released.
	m, _ = update(t, m, msg)
	require.Equal(t, ViewSales, m.view)
	require.Equal(t, detailIdle, m.state)
	require.False(t, m.modalLock.Held())
}

func TestCancelDeleteIssuesNoRequest(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	m := newTestModel(srv.URL, "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('d'))
	require.True(t, m.modalLock.Held())

	m, cmd := update(t, m, keyRune('n'))
	require.Nil(t, cmd)
	require.Equal(t, detailIdle, m.state)
	require.False(t, m.modalLock.Held())
	require.Empty(t, rec.all())
}

func TestSellerSaveObservationSendsFullPayload(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	m := newTestModel(srv.URL, "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('o'))
	require.Equal(t, detailEditingObservation, m.state)
	require.True(t, m.modalLock.Held())

	// Type into the draft.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" atualizada")})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, saleSavedMsg{}, msg)

	requests := rec.all()
	require.Len(t, requests, 1)
	require.Equal(t, http.MethodPut, requests[0].method)
	require.Equal(t, "/sales/s1", requests[0].path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(requests[0].body, &body))
	require.Equal(t, "observação original atualizada", body["observation"])
	require.Equal(t, "u1", body["userId"])
	require.Equal(t, "Maria Souza", body["customerName"])
	require.Equal(t, "2024-02-29T21:00:00-03:00", body["saleDate"])
	require.Nil(t, body["installationDate"])

	m, _ = update(t, m, msg)
	require.Equal(t, ViewSales, m.view)
	require.False(t, m.modalLock.Held())
}

func TestSupervisorCannotSaveObservation(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	m := newTestModel(srv.URL, "E999", RoleSupervisor)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('o'))
	require.Equal(t, detailEditingObservation, m.state)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Nil(t, cmd)
	require.Equal(t, detailEditingObservation, m.state)
	require.Empty(t, rec.all())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, detailIdle, m.state)
	require.False(t, m.modalLock.Held())
}

func TestExitWithoutSavingKeepsBackendUntouched(t *testing.T) {
	t.Parallel()

	srv, rec := newRecordingServer(t, http.StatusOK, `{}`)
	m := newTestModel(srv.URL, "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('o'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(" rascunho")})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, detailIdle, m.state)
	require.False(t, m.modalLock.Held())
	require.Empty(t, rec.all())
}

func TestQuitWithModalOpenReleasesLock(t *testing.T) {
	t.Parallel()

	m := newTestModel("http://unused", "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('o'))
	require.True(t, m.modalLock.Held())

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.False(t, m.modalLock.Held())
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFailedDeleteLeavesDialogOpen(t *testing.T) {
	t.Parallel()

	srv, _ := newRecordingServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
	m := newTestModel(srv.URL, "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('d'))
	m, cmd := update(t, m, keyRune('y'))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, errorMsg{}, msg)

	m, _ = update(t, m, msg)
	require.Equal(t, detailConfirmingDelete, m.state)
	require.True(t, m.modalLock.Held())
	require.Equal(t, "error", m.messageType)
}

func TestNullObservationDraftStaysNull(t *testing.T) {
	t.Parallel()

	sale := testSale()
	sale.Observation = nil

	m := newTestModel("http://unused", "E100", RoleSeller)
	m = m.openDetail(sale)

	require.Nil(t, m.draftObservation())

	m, _ = update(t, m, keyRune('o'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("novo texto")})
	draft := m.draftObservation()
	require.NotNil(t, draft)
	require.Equal(t, "novo texto", *draft)
}

func TestEditFormOpensForOwner(t *testing.T) {
	t.Parallel()

	m := newTestModel("http://unused", "E100", RoleSeller)
	m = m.openDetail(testSale())

	m, _ = update(t, m, keyRune('e'))
	require.Equal(t, ViewEditSale, m.view)
	require.Len(t, m.inputs, len(editFormLabels))
	require.Equal(t, "123.456.789-00", m.inputs[0].Value())
	require.Equal(t, "Maria Souza", m.inputs[9].Value())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ViewSaleDetail, m.view)
}
