package charts

// ChartSnippet represents an embeddable ECharts chart fragment.
// Div contains a single root <div id="..." style="..."></div>,
// Script the <script>...</script> block that initializes the chart in
// that div, and HTML the complete snippet ready for template
// substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
}

// Generator builds dashboard chart snippets and export images
type Generator struct {
	outputDir string
}

// NewGenerator creates a chart generator. outputDir is only used for
// image exports; snippet generation is in-memory.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
	}
}
