package render

import (
	"bytes"
	"context"
	"text/template"
	"time"

	"studentska/contexts/identity-access/identity-service/domain/entities"
	"studentska/contexts/identity-access/identity-service/ports"
)

const confirmationTemplate = `POTVRDA O STATUSU STUDENTA
==========================

Student:      {{.FirstName}} {{.LastName}}
Broj indeksa: {{.IndexNumber}}
Email:        {{.Email}}
Status:       {{.Status}}

Potvrđuje se da je imenovani student upisan na fakultet i da mu navedeni
status važi na dan {{.AsOf}}.
`

// ConfirmationRenderer produces the plain-text enrollment-status
// confirmation served for download.
type ConfirmationRenderer struct {
	tmpl *template.Template
}

func NewConfirmationRenderer() *ConfirmationRenderer {
	return &ConfirmationRenderer{
		tmpl: template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

func (r *ConfirmationRenderer) Render(_ context.Context, account entities.Account, asOf time.Time) (ports.Document, error) {
	var buf bytes.Buffer
	err := r.tmpl.Execute(&buf, map[string]string{
		"FirstName":   account.FirstName,
		"LastName":    account.LastName,
		"IndexNumber": account.IndexNumber,
		"Email":       account.Email,
		"Status":      account.Status,
		"AsOf":        asOf.Format("02.01.2006."),
	})
	if err != nil {
		return ports.Document{}, err
	}
	return ports.Document{
		ContentType: "text/plain; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}
