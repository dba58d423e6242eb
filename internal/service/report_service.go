package service

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"prepwise-backend/internal/model"
)

// ReportService renders a PDF performance report for a session.
type ReportService interface {
	GenerateReport(session *model.InterviewSession) ([]byte, error)
}

type reportService struct{}

func NewReportService() ReportService {
	return &reportService{}
}

func (r *reportService) GenerateReport(session *model.InterviewSession) ([]byte, error) {
	session.Lock()
	defer session.Unlock()

	iv := session.Interview

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, "Mock Interview Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("Role: %s", iv.Role), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Status: %s", iv.Status), "", 1, "L", false, 0, "")
	if iv.StartTime != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Started: %s", iv.StartTime.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	}
	if iv.EndTime != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Finished: %s", iv.EndTime.Format("2006-01-02 15:04:05")), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 8, fmt.Sprintf("Questions answered: %d of %d", len(session.Answers), len(iv.Questions)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for i, q := range iv.Questions {
		pdf.SetFont("Arial", "B", 12)
		pdf.MultiCell(0, 7, fmt.Sprintf("Q%d. %s", i+1, q.Question), "", "L", false)

		ans, answered := session.Answers[q.ID]
		pdf.SetFont("Arial", "", 10)
		if !answered {
			pdf.MultiCell(0, 6, "Not answered.", "", "L", false)
			pdf.Ln(3)
			continue
		}

		pdf.MultiCell(0, 6, fmt.Sprintf("Answer: %s", ans.Answer), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Score: %.1f", ans.Feedback.Score), "", "L", false)
		pdf.MultiCell(0, 6, fmt.Sprintf("Feedback: %s", ans.Feedback.DetailedFeedback), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}
