// Package report renders an objective analysis as a PDF document.
package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"wealth-objective/domain"
)

const (
	Title      = "Informe EME Wealth Objetive"
	infeasible = "Inviable"
)

// Rows returns the series rows shown in the report: the first headYears
// years and the final one.
func Rows(series []domain.YearPoint, headYears int) []domain.YearPoint {
	var rows []domain.YearPoint
	for i, pt := range series {
		if i <= headYears || i == len(series)-1 {
			rows = append(rows, pt)
		}
	}
	return rows
}

// Render writes the PDF report for res to w.
func Render(w io.Writer, res domain.ObjectiveResult, headYears int) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, tr(Title), "", 1, "C", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	in := res.Input

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(50, 8, tr(label), "", 0, "", false, 0, "")
		pdf.CellFormat(0, 8, tr(value), "", 1, "", false, 0, "")
	}

	// 1. Situación
	section("1. Resumen de Situación")
	row("Objetivo:", in.GoalName)
	row("Patrimonio Actual:", Money(in.PresentValue, 2))
	row("Objetivo Financiero:", fmt.Sprintf("%s en %d años", Money(res.TargetWealth, 2), in.Years))
	row("Inflación Estimada:", PercentValue(in.Inflation))
	pdf.Ln(5)

	// 2. Escenarios
	section("2. Hoja de Ruta - Escenarios")
	cagr := infeasible
	if res.RequiredRate != nil {
		cagr = Percent(*res.RequiredRate)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Escenario A: Rentabilidad Requerida"), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"Para alcanzar %s manteniendo su ahorro actual de %s/mes, sus inversiones deben generar un retorno anual compuesto (CAGR) de: %s",
		Money(res.TargetWealth, 2), Money(in.MonthlyContribution, 2), cagr)), "", "", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 8, tr("Escenario B: Esfuerzo de Ahorro"), "", 1, "", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf(
		"Si asumimos una rentabilidad fija del %s, debería ahorrar mensualmente: %s/mes (Gap: %s)",
		PercentValue(in.ReferenceRate), Money(res.RequiredContribution, 2), Money(res.ContributionGap, 2))), "", "", false)
	pdf.Ln(10)

	// 3. Tabla de proyección
	section("3. Proyección Patrimonial (Primeros Años y Final)")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(20, 8, tr("Año"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, tr("Patrimonio Proyectado"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, tr("Aportado Acumulado"), "1", 1, "C", true, 0, "")

	for _, pt := range Rows(res.Series, headYears) {
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", in.BaseYear+pt.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 8, tr(Money(pt.Ideal, 0)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(50, 8, tr(Money(pt.CashOnly, 0)), "1", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
