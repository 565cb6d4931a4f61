package amplicon

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func SetRow(xlsx *excelize.File, sheet string, col, row int, value []interface{}) {
	simpleUtil.CheckErr(
		xlsx.SetSheetRow(
			sheet,
			simpleUtil.HandleError(excelize.CoordinatesToCellName(col, row)),
			&value,
		),
	)
}

// WriteConsXlsx writes the per-position report: base counts, consensus symbol
// and confidence for every window position. Positions in doNotInclude were
// forced to Gap and carry no confidence.
func WriteConsXlsx(path string, consList []map[byte]int, consSeq string, consConfs []float64, doNotInclude []int, readCount int) error {
	var (
		xlsx  = excelize.NewFile()
		sheet = "Consensus"
		skip  = make(map[int]bool, len(doNotInclude))
	)
	for _, p := range doNotInclude {
		skip[p] = true
	}
	simpleUtil.CheckErr(xlsx.SetSheetName("Sheet1", sheet))

	SetRow(xlsx, sheet, 1, 1, []interface{}{"Pos", "A", "C", "G", "T", "Consensus", "Confidence", "ReadCount"})

	var confIdx = 0
	for i, countDict := range consList {
		var row = []interface{}{
			i + 1,
			countDict['A'],
			countDict['C'],
			countDict['G'],
			countDict['T'],
			string(consSeq[i]),
		}
		if skip[i+1] {
			row = append(row, "")
		} else {
			row = append(row, consConfs[confIdx])
			confIdx++
		}
		if i == 0 {
			row = append(row, readCount)
		}
		SetRow(xlsx, sheet, 1, i+2, row)
	}

	return xlsx.SaveAs(path)
}
