package notify

import (
	"strings"

	"portfolio-api/internal/models"
)

const collaborationSubject = "New Collaboration Request"

// CollaborationNotification summarises every submitted field in plain text.
func CollaborationNotification(c *models.Collaboration) Notification {
	var b strings.Builder
	b.WriteString("You have received a new collaboration request:\n\n")

	fields := []struct{ label, value string }{
		{"Name", c.Name},
		{"Email", c.Email},
		{"Company", c.Company},
		{"Phone", c.Phone},
		{"Project Type", c.ProjectType},
		{"Budget", c.Budget},
		{"Timeline", c.Timeline},
		{"Description", c.Description},
		{"Requirements", c.Requirements},
	}
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		value := f.value
		if value == "" {
			value = "-"
		}
		b.WriteString(f.label + ": " + value)
	}

	if !c.SubmittedAt.IsZero() {
		b.WriteString("\n\nSubmitted: " + c.SubmittedAt.Format("2006-01-02 15:04:05 MST"))
	}

	return Notification{
		Subject: collaborationSubject,
		Text:    b.String(),
		ReplyTo: c.Email,
	}
}
