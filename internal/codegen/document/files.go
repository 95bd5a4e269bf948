package document

import (
	"github.com/vacgen/vacgen/internal/output"
)

// MainUnit is the aggregate program that calls every generated unit.
const MainUnit = "MAIN"

// FileName builds "gen.<side>.<object>".
func FileName(side, object string) string {
	return "gen." + side + "." + object
}

// Files renders a side's variable and program documents into output
// files, one per unit and kind, plus the aggregate main program.
func Files(side string, vars, progs *Set, order []Section, diagnostic string) []output.File {
	var files []output.File
	for _, d := range vars.Documents() {
		files = append(files, output.File{
			Name: FileName(side, VariablesName(d.Name)),
			Data: d.Bytes(order),
		})
	}
	for _, d := range progs.Documents() {
		files = append(files, output.File{
			Name: FileName(side, ProgramName(d.Name)),
			Data: d.Bytes(order),
		})
	}
	files = append(files, output.File{
		Name: FileName(side, ProgramName(MainUnit)),
		Data: []byte(MainProgram(progs.Units(), diagnostic)),
	})
	return files
}
