package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"vertical":   verticalCases,
	"horizontal": horizontalCases,
	"oblique":    obliqueCases,
	"circle":     circleCases,
	"degenerate": degenerateCases,
	"steep":      steepCases,
}
