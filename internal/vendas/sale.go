package vendas

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// SaoPauloZone is the civil calendar zone the backend expects for scheduling dates.
const SaoPauloZone = "America/Sao_Paulo"

var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation(SaoPauloZone)
	if err != nil {
		// Brazil dropped DST in 2019, so a fixed offset is equivalent.
		return time.FixedZone("-03", -3*60*60)
	}
	return loc
}()

// Status is the lifecycle code of a sale. The set is closed; the backend
// rejects anything else.
type Status string

const (
	StatusInstalada           Status = "Instalada"
	StatusCancelada           Status = "Cancelada"
	StatusComPendencia        Status = "Com_pendencia"
	StatusAguardandoPagamento Status = "Aguardando_pagamento"
	StatusPendenciaTecnica    Status = "Pendencia_tecnica"
	StatusDraft               Status = "Draft"
	StatusSemSlot             Status = "Sem_slot"
	StatusEmAprovisionamento  Status = "Em_aprovisionamento"
)

// Agent is the employee who owns a sale record.
type Agent struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
}

// Sale is one customer order/installation tracked by the dashboard. The
// record is owned by the backend; the client never mutates it in place.
type Sale struct {
	ID                string     `json:"id"`
	CpfCnpj           string     `json:"cpfCnpj"`
	Region            string     `json:"region"`
	Ticket            string     `json:"ticket"`
	CallerIDPhone     string     `json:"callerIdPhone"`
	Phone             string     `json:"phone"`
	SaleDate          *time.Time `json:"saleDate"`
	InternetPlanSpeed string     `json:"internetPlanSpeed"`
	PaymentMethod     string     `json:"paymentMethod"`
	InternetType      string     `json:"internetType"`
	InstallationDate  *time.Time `json:"installationDate"`
	InstallationShift string     `json:"installationShift"`
	CustomerName      string     `json:"customerName"`
	ServiceOrder      string     `json:"serviceOrder"`
	Extension         string     `json:"extension"`
	Status            Status     `json:"status"`
	Observation       *string    `json:"observation"`
	User              Agent      `json:"user"`
}

// VisualState selects the card's border and background.
type VisualState int

const (
	VisualNeutral VisualState = iota
	VisualSuccess
	VisualFailure
	VisualWarning
)

// Visual maps a status to its visual state. Every pending variant renders as
// a warning; unknown statuses fall back to neutral together with
// Em_aprovisionamento.
func (s Status) Visual() VisualState {
	switch s {
	case StatusInstalada:
		return VisualSuccess
	case StatusCancelada:
		return VisualFailure
	case StatusComPendencia, StatusAguardandoPagamento, StatusPendenciaTecnica,
		StatusDraft, StatusSemSlot:
		return VisualWarning
	default:
		return VisualNeutral
	}
}

// StatusLabel turns a raw status code into its display label. An empty
// status means the sale is still being provisioned.
func StatusLabel(s Status) string {
	label := strings.ReplaceAll(string(s), "_", " ")
	if label == "" {
		return "Em aprovisionamento"
	}
	return label
}

// DocumentKind distinguishes individual from organization tax ids.
type DocumentKind int

const (
	DocumentCPF  DocumentKind = iota // individual
	DocumentCNPJ                     // organization
)

// ClassifyDocument strips everything but digits from a tax id. Exactly 11
// digits is a CPF; any other length is treated as a CNPJ.
func ClassifyDocument(cpfCnpj string) DocumentKind {
	digits := 0
	for _, r := range strings.TrimSpace(cpfCnpj) {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits == 11 {
		return DocumentCPF
	}
	return DocumentCNPJ
}

// Glyph returns the card icon for the document kind.
func (k DocumentKind) Glyph() string {
	if k == DocumentCPF {
		return "⌂"
	}
	return "▤"
}

// Label returns the field label shown next to the tax id.
func (k DocumentKind) Label() string {
	if k == DocumentCPF {
		return "CPF:"
	}
	return "CNPJ:"
}

// FormatDate renders a scheduling date in day/month/year order for the Sao
// Paulo calendar. Absent dates render as a dash.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.In(saoPaulo).Format("02/01/2006")
}

// UpdatePayload is the body of PUT /sales/{id}. The backend requires the
// complete record on update, not a partial patch, so every field travels
// even when only the observation changed.
type UpdatePayload struct {
	UserID            string     `json:"userId"`
	CpfCnpj           string     `json:"cpfCnpj"`
	Region            string     `json:"region"`
	Ticket            string     `json:"ticket"`
	CallerIDPhone     string     `json:"callerIdPhone"`
	Phone             string     `json:"phone"`
	SaleDate          *time.Time `json:"saleDate"`
	InternetPlanSpeed string     `json:"internetPlanSpeed"`
	PaymentMethod     string     `json:"paymentMethod"`
	InternetType      string     `json:"internetType"`
	InstallationDate  *time.Time `json:"installationDate"`
	InstallationShift string     `json:"installationShift"`
	CustomerName      string     `json:"customerName"`
	ServiceOrder      string     `json:"serviceOrder"`
	Extension         string     `json:"extension"`
	Status            Status     `json:"status"`
	Observation       *string    `json:"observation"`
}

// BuildUpdatePayload assembles the full server-shape record from the
// in-memory sale, carrying the acting user's id and the given observation.
// Scheduling dates are converted to their Sao Paulo representation when
// present and stay null otherwise.
func (s *Sale) BuildUpdatePayload(actingUserID string, observation *string) UpdatePayload {
	return UpdatePayload{
		UserID:            actingUserID,
		CpfCnpj:           s.CpfCnpj,
		Region:            s.Region,
		Ticket:            s.Ticket,
		CallerIDPhone:     s.CallerIDPhone,
		Phone:             s.Phone,
		SaleDate:          zoned(s.SaleDate),
		InternetPlanSpeed: s.InternetPlanSpeed,
		PaymentMethod:     s.PaymentMethod,
		InternetType:      s.InternetType,
		InstallationDate:  zoned(s.InstallationDate),
		InstallationShift: s.InstallationShift,
		CustomerName:      s.CustomerName,
		ServiceOrder:      s.ServiceOrder,
		Extension:         s.Extension,
		Status:            s.Status,
		Observation:       observation,
	}
}

func zoned(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	z := t.In(saoPaulo)
	return &z
}
