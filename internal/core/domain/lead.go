package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where a lead sits in the contact lifecycle.
type LeadStatus string

const (
	// StatusNew is the initial status of every imported lead.
	StatusNew LeadStatus = "new"

	// StatusContacted means at least one call has been recorded.
	StatusContacted LeadStatus = "contacted"

	// StatusQualified means the lead has been vetted as a real prospect.
	StatusQualified LeadStatus = "qualified"

	// StatusUnqualified means the lead has been ruled out.
	StatusUnqualified LeadStatus = "unqualified"
)

// Valid reports whether s is one of the known statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusUnqualified:
		return true
	}
	return false
}

// LeadSource marks which import pathway produced a lead.
// It never changes after creation.
type LeadSource string

const (
	// SourceOriginal marks leads parsed from the report-text export.
	SourceOriginal LeadSource = "original"

	// SourceFresh marks leads parsed from the CSV export.
	SourceFresh LeadSource = "fresh"
)

// CallOutcome is the result of a single contact attempt.
type CallOutcome string

const (
	OutcomeAnswered  CallOutcome = "answered"
	OutcomeVoicemail CallOutcome = "voicemail"
	OutcomeNoAnswer  CallOutcome = "no-answer"
	OutcomeBusy      CallOutcome = "busy"
)

// Valid reports whether o is one of the known outcomes.
func (o CallOutcome) Valid() bool {
	switch o {
	case OutcomeAnswered, OutcomeVoicemail, OutcomeNoAnswer, OutcomeBusy:
		return true
	}
	return false
}

// Call is one recorded contact attempt against a lead.
type Call struct {
	// ID is unique within the lead.
	ID string `json:"id"`

	// Date is when the attempt was made.
	Date time.Time `json:"date"`

	// Outcome is the result of the attempt.
	Outcome CallOutcome `json:"outcome"`

	// Notes is optional free text about the call.
	Notes string `json:"notes,omitempty"`

	// Duration is a free-form string ("5 min"), not a structured quantity.
	Duration string `json:"duration,omitempty"`
}

// Lead is a normalized sales-prospect record. The descriptive fields are
// extracted strings from one of the import formats; the tracking fields are
// mutated through the lifecycle of the record. JSON tags match the layout of
// the stored leads document.
type Lead struct {
	ID string `json:"id"`

	// Descriptive fields, common to both import formats.
	Company              string `json:"company"`
	UEI                  string `json:"uei"`
	POCName              string `json:"pocName"`
	InitialEntityDate    string `json:"initialEntityDate"`
	RecentActivationDate string `json:"recentActivationDate"`
	Address              string `json:"address"`
	NAICSCount           string `json:"naicsCount"`
	NAICSCodes           string `json:"naicsCodes"`

	// Fields only present on CSV-sourced leads.
	CageCode           string `json:"cageCode,omitempty"`
	RegistrationStatus string `json:"registrationStatus,omitempty"`
	ExpirationDate     string `json:"expirationDate,omitempty"`
	City               string `json:"city,omitempty"`
	State              string `json:"state,omitempty"`
	Zip                string `json:"zip,omitempty"`

	// Contact info, added manually through the UI.
	Phone string `json:"phone"`
	Email string `json:"email"`

	// Tracking fields.
	CallHistory     []Call     `json:"callHistory"`
	Notes           string     `json:"notes"`
	Status          LeadStatus `json:"status"`
	LastContactDate *time.Time `json:"lastContactDate"`

	// Source marks which parser produced this lead.
	Source LeadSource `json:"source"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewLead creates an empty lead with a fresh ID, default tracking fields and
// both timestamps set to now. Leads are only created by the format parsers.
func NewLead(source LeadSource) Lead {
	now := time.Now().UTC()
	return Lead{
		ID:          NewLeadID(),
		CallHistory: []Call{},
		Status:      StatusNew,
		Source:      source,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewLeadID returns a unique lead identifier.
func NewLeadID() string {
	return "lead_" + uuid.New().String()
}

// NewCallID returns a unique call identifier.
func NewCallID() string {
	return "call_" + uuid.New().String()
}

// CallInput describes a contact attempt to record against a lead.
// A zero Date means "now".
type CallInput struct {
	Date     time.Time
	Outcome  CallOutcome
	Notes    string
	Duration string
}

// AddCall appends a contact attempt to the lead's history, sets the last
// contact date to the call's date and advances a "new" lead to "contacted".
// The transition is one-way and only triggered by the first contact.
func (l *Lead) AddCall(in CallInput) Call {
	date := in.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	call := Call{
		ID:       NewCallID(),
		Date:     date,
		Outcome:  in.Outcome,
		Notes:    in.Notes,
		Duration: in.Duration,
	}
	l.CallHistory = append(l.CallHistory, call)
	l.LastContactDate = &call.Date
	if l.Status == StatusNew {
		l.Status = StatusContacted
	}
	l.Touch()
	return call
}

// LeadPatch carries optional field updates for a lead.
// Nil fields are left untouched.
type LeadPatch struct {
	Phone  *string
	Email  *string
	Notes  *string
	Status *LeadStatus
}

// Apply merges the patch into the lead and stamps UpdatedAt.
func (l *Lead) Apply(p LeadPatch) {
	if p.Phone != nil {
		l.Phone = *p.Phone
	}
	if p.Email != nil {
		l.Email = *p.Email
	}
	if p.Notes != nil {
		l.Notes = *p.Notes
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	l.Touch()
}

// Touch stamps UpdatedAt with the current time.
func (l *Lead) Touch() {
	l.UpdatedAt = time.Now().UTC()
}
