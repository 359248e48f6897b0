package extract

// Backend extracts plain text from raw document bytes of one format.
type Backend interface {
	Name() string
	Extract(data []byte) (string, error)
}

// Priority-ordered backend registries per format.
var (
	pdfBackends  = []Backend{ledongthucPDF{}}
	docxBackends = []Backend{nguyenDOCX{}, ooxmlDOCX{}}
)
