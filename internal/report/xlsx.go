package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

// WriteXLSX writes the report's opportunity and ROI numbers to an xlsx
// workbook at path. Two sheets: Opportunities and ROI Summary.
func WriteXLSX(rpt *model.Report, path string) error {
	f := xlsx.NewFile()

	opps, err := f.AddSheet("Opportunities")
	if err != nil {
		return eris.Wrap(err, "xlsx: add opportunities sheet")
	}
	header := opps.AddRow()
	for _, h := range []string{"Opportunity", "Category", "Priority", "Monthly Savings", "Implementation Cost", "Hours Saved / Week"} {
		header.AddCell().SetString(h)
	}
	for _, o := range rpt.Opportunities {
		row := opps.AddRow()
		row.AddCell().SetString(o.Title)
		row.AddCell().SetString(o.Category)
		row.AddCell().SetString(o.Priority)
		row.AddCell().SetFloatWithFormat(o.MonthlySavings, "$#,##0.00")
		row.AddCell().SetFloatWithFormat(o.ImplementationCost, "$#,##0.00")
		row.AddCell().SetFloat(o.HoursSavedPerWeek)
	}

	roi, err := f.AddSheet("ROI Summary")
	if err != nil {
		return eris.Wrap(err, "xlsx: add roi sheet")
	}
	addPair := func(label string, set func(*xlsx.Cell)) {
		row := roi.AddRow()
		row.AddCell().SetString(label)
		set(row.AddCell())
	}
	addPair("Automation Score", func(c *xlsx.Cell) { c.SetInt(rpt.AutomationScore) })
	addPair("Total Monthly Savings", func(c *xlsx.Cell) { c.SetFloatWithFormat(rpt.ROI.TotalMonthlySavings, "$#,##0.00") })
	addPair("Total Implementation Cost", func(c *xlsx.Cell) { c.SetFloatWithFormat(rpt.ROI.TotalImplementationCost, "$#,##0.00") })
	addPair("Payback (months)", func(c *xlsx.Cell) { c.SetFloat(rpt.ROI.PaybackMonths) })
	addPair("3-Year Value", func(c *xlsx.Cell) { c.SetFloatWithFormat(rpt.ROI.ThreeYearValue, "$#,##0.00") })
	addPair("Confidence", func(c *xlsx.Cell) { c.SetString(fmt.Sprintf("%d%%", rpt.ROI.ConfidenceScore)) })

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}
