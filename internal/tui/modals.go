package tui

import (
	"fmt"
	"strings"

	"github.com/nmoreras/ganttboard/internal/dateutil"
	"github.com/nmoreras/ganttboard/internal/feature"
)

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalDetail:
		return m.renderDetailModal()
	case ModalFeatureForm:
		return m.renderFeatureFormModal()
	case ModalAssignmentForm:
		return m.renderAssignmentFormModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	default:
		return ""
	}
}

func (m Model) renderDetailModal() string {
	a, found := feature.FindAssignment(m.features, m.detailFeatureID, m.detailAssignmentID)
	if !found {
		return ""
	}
	fi := feature.FindFeature(m.features, m.detailFeatureID)
	featureName := ""
	if fi >= 0 {
		featureName = m.features[fi].Name
	}

	role := a.Role
	if role == "" {
		role = feature.RoleUnassigned
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(featureName))
	b.WriteString("\n\n")
	b.WriteString(m.detailLine("Role", role))
	if a.Label != "" {
		b.WriteString(m.detailLine("Note", a.Label))
	}
	b.WriteString(m.detailLine("Start", dateutil.FormatDate(a.Start)))
	b.WriteString(m.detailLine("End", dateutil.FormatDate(a.End)))
	b.WriteString(m.detailLine("Working days", fmt.Sprintf("%d", a.WorkingDays())))
	b.WriteString(m.detailLine("Progress", fmt.Sprintf("%d%%", a.Progress)))
	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("esc close"))

	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) detailLine(label, value string) string {
	return m.styles.ModalLabelStyle.Render(fmt.Sprintf("%-14s", label)) +
		m.styles.ModalValueStyle.Render(value) + "\n"
}

func (m Model) renderFeatureFormModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("New feature"))
	b.WriteString("\n\n")
	b.WriteString(m.nameIn.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalHintStyle.Render("enter create · esc cancel"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderAssignmentFormModal() string {
	labels := [formFieldCount]string{"Role", "Note", "Start", "End"}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("New assignment"))
	b.WriteString("\n\n")
	for i, in := range m.form {
		label := fmt.Sprintf("%-8s", labels[i])
		if i == m.formFocus {
			b.WriteString(m.styles.ModalActiveStyle.Render(label))
		} else {
			b.WriteString(m.styles.ModalLabelStyle.Render(label))
		}
		b.WriteString(in.View())
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("tab next field · enter create · esc cancel"))
	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderConfirmDeleteModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Confirm delete"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalValueStyle.Render(m.confirmMessage))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalHintStyle.Render("y delete · n cancel"))
	return m.styles.ModalStyle.Render(b.String())
}
