// Package renderer turns account operations and ledgers into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/teller"
)

//go:embed *.md
var templates embed.FS

// Receipt is what the teller hands out after an account operation.
type Receipt struct {
	Title   string
	Kind    string // selects the body: inquiry, accepted, rejected or notfound
	Session string
	ID      string
	Name    string

	Previous string
	Amount   string
	Fee      string
	Balance  string
	Reason   string
}

// InquiryReceipt builds the receipt of a balance inquiry on account id.
func InquiryReceipt(session, id string, out teller.Outcome) *Receipt {
	r := newReceipt("Balance inquiry", session, id, out)
	if out.Status == teller.Found {
		r.Kind = "inquiry"
	}
	return r
}

// WithdrawalReceipt builds the receipt of a withdrawal on account id.
func WithdrawalReceipt(session, id string, out teller.Outcome) *Receipt {
	r := newReceipt("Withdrawal", session, id, out)
	switch out.Status {
	case teller.Accepted:
		r.Kind = "accepted"
	case teller.Rejected:
		r.Kind = "rejected"
	}
	return r
}

func newReceipt(title, session, id string, out teller.Outcome) *Receipt {
	r := &Receipt{
		Title:    title,
		Kind:     "notfound",
		Session:  session,
		ID:       id,
		Name:     out.Name,
		Previous: cop(out.Previous),
		Amount:   cop(out.Amount),
		Fee:      cop(out.Fee),
		Balance:  cop(out.Balance),
	}
	if out.Reason != nil {
		r.Reason = out.Reason.Error()
	}
	return r
}

// RenderReceipt renders a receipt to a markdown string.
func RenderReceipt(r *Receipt) string {
	partials := map[string]string{
		"receipt_body":   "receipt_" + r.Kind + ".md",
		"receipt_footer": "receipt_footer.md",
	}
	return renderTemplate("receipt", "receipt.md", partials, r)
}

// Registered describes a newly registered account. The secret is never part of it.
type Registered struct {
	ID      string
	Name    string
	Balance string
	Line    int
}

// NewRegistered describes rec, registered at index line of the users ledger.
func NewRegistered(rec teller.Record, line int) *Registered {
	return &Registered{ID: rec.ID, Name: rec.Name, Balance: rec.Amount().String(), Line: line}
}

// RenderRegistered renders a registration confirmation to a markdown string.
func RenderRegistered(r *Registered) string {
	return renderTemplate("registration", "registration.md", nil, r)
}

// Status describes the ledgers files at rest.
type Status struct {
	Encryption string
	Ledgers    []LedgerStatus
}

// LedgerStatus describes one ledger file.
type LedgerStatus struct {
	Name  string
	Path  string
	Lines int
	State string // plain or transformed, from its first line
}

// NewStatus describes the users and admins ledgers as loaded from usersPath and adminsPath.
func NewStatus(users, admins *teller.Ledger, usersPath, adminsPath string) *Status {
	return &Status{
		Encryption: teller.CheckState(users, admins).String(),
		Ledgers: []LedgerStatus{
			ledgerStatus(users, usersPath),
			ledgerStatus(admins, adminsPath),
		},
	}
}

func ledgerStatus(l *teller.Ledger, path string) LedgerStatus {
	state := "plain"
	if l.Len() > 0 && teller.IsTransformed(l.Line(0)) {
		state = "transformed"
	}
	return LedgerStatus{Name: l.Name(), Path: path, Lines: l.Len(), State: state}
}

// RenderStatus renders the status of the ledgers to a markdown string.
func RenderStatus(s *Status) string {
	return renderTemplate("status", "status.md", nil, s)
}

// Listing is a readable view of a decoded ledger, without secrets.
type Listing struct {
	Name    string
	Entries []Entry
}

// Entry is one line of a Listing.
type Entry struct {
	Index   int
	ID      string
	Name    string
	Balance string
}

// NewListing lists every line of l.
//
// Account lines show their identifier, name and balance, credential only lines show their
// identifier, anything else is marked as malformed.
func NewListing(l *teller.Ledger) *Listing {
	list := &Listing{Name: l.Name()}
	for i, line := range l.Lines() {
		e := Entry{Index: i}
		if rec, err := teller.DecodeRecord(line); err == nil {
			e.ID, e.Name, e.Balance = rec.ID, rec.Name, rec.Amount().String()
		} else if id, _, err := teller.DecodeCredentials(line); err == nil {
			e.ID = id
		} else {
			e.ID, e.Name = "?", "(malformed)"
		}
		list.Entries = append(list.Entries, e)
	}
	return list
}

// RenderListing renders a ledger listing to a markdown string.
func RenderListing(l *Listing) string {
	return renderTemplate("ledger", "ledger.md", nil, l)
}

func cop(v int64) string { return teller.M(v, teller.Currency).String() }

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
