package dispatcher

import "html/template"

// Mail bodies are deliberately plain: table-free HTML that renders the same
// everywhere. Data fields come straight from the persisted record, so
// html/template escaping matters here.

const confirmationTmpl = `
<h2>We received your consultation request</h2>
<p>Hi {{.Names}},</p>
<p>Thanks for reaching out to Pairline. A number consultant will contact you
within one business day to walk through matched pairs in your budget.</p>
<ul>
  <li>Relationship: {{.RelationshipType}}</li>
  <li>Budget tier: {{.Budget}}</li>
  {{- if .Anniversary}}
  <li>Anniversary: {{.Anniversary}}</li>
  {{- end}}
</ul>
{{- if .Preferences}}
<p>Your notes: {{.Preferences}}</p>
{{- end}}
<p>— The Pairline team</p>
`

const adminAlertTmpl = `
<h2>New consultation #{{.ID}}</h2>
<ul>
  <li>Names: {{.Names}}</li>
  <li>Email: {{.Email}}</li>
  <li>Phone: {{.Phone}}</li>
  <li>Relationship: {{.RelationshipType}}</li>
  <li>Budget tier: {{.Budget}}</li>
  {{- if .Anniversary}}
  <li>Anniversary: {{.Anniversary}}</li>
  {{- end}}
</ul>
{{- if .Preferences}}
<p>Preferences: {{.Preferences}}</p>
{{- end}}
<p><a href="{{.PanelURL}}/consultations/{{.ID}}">Open in admin panel</a></p>
`

const welcomeTmpl = `
<h2>Welcome to the Pairline newsletter</h2>
<p>You are on the list. Expect matched-pair drops, pattern spotlights and
the occasional anniversary reminder — nothing more.</p>
<p>— The Pairline team</p>
`

var (
	confirmation = template.Must(template.New("confirmation").Parse(confirmationTmpl))
	adminAlert   = template.Must(template.New("admin-alert").Parse(adminAlertTmpl))
	welcome      = template.Must(template.New("welcome").Parse(welcomeTmpl))
)
