package ops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
	"github.com/nmtri/rolecoach/internal/session"
	"github.com/nmtri/rolecoach/internal/store"
)

// ExportSessionInput contains parameters for the ExportSession operation.
type ExportSessionInput struct {
	ID   string // required
	Path string // optional, default: <baseDir>/exports/session-<id>.md
}

// ExportSessionOutput contains the result of the ExportSession operation.
type ExportSessionOutput struct {
	Path string `json:"path"`
}

// ExportSession writes one archived session as a markdown transcript.
func ExportSession(st *store.Store, baseDir string, input ExportSessionInput) (*ExportSessionOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	sess := session.Find(st, input.ID)
	if sess == nil {
		return nil, errors.NewNotFound(input.ID)
	}

	path := input.Path
	if path == "" {
		path = filepath.Join(baseDir, "exports", fmt.Sprintf("session-%s.md", sess.ID))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	if err := os.WriteFile(path, []byte(sessionMarkdown(sess)), 0600); err != nil {
		return nil, errors.NewInternal(fmt.Errorf("failed to write export file: %w", err))
	}
	return &ExportSessionOutput{Path: path}, nil
}

func sessionMarkdown(sess *session.Session) string {
	var b strings.Builder

	name := "Khách hàng"
	if sess.Customer != nil {
		name = sess.Customer.DisplayName()
	}
	fmt.Fprintf(&b, "# Phiên luyện tập: %s\n\n", name)
	fmt.Fprintf(&b, "- Luồng tư vấn: %s\n", sess.FlowType)
	fmt.Fprintf(&b, "- Phân khúc: %s\n", sess.Segment)
	stages := flows.StagesFor(sess.FlowType)
	if sess.CurrentStage >= 0 && sess.CurrentStage < len(stages) {
		fmt.Fprintf(&b, "- Giai đoạn cuối: %s\n", stages[sess.CurrentStage].Name)
	}
	fmt.Fprintf(&b, "- Bắt đầu: %s\n", sess.CreatedAt)
	if sess.CompletedAt != "" {
		fmt.Fprintf(&b, "- Kết thúc: %s\n", sess.CompletedAt)
	}

	b.WriteString("\n## Hội thoại\n\n")
	for _, m := range sess.Messages {
		label := "Khách hàng"
		if m.Role == "user" {
			label = "Tư vấn viên"
		}
		fmt.Fprintf(&b, "**%s:** %s\n\n", label, m.Content)
	}

	if sess.Note != "" {
		b.WriteString("## Ghi chú\n\n")
		b.WriteString(sess.Note)
		b.WriteString("\n")
	}
	return b.String()
}
